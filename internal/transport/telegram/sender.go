package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecosmart/shop/internal/assistant"
	"github.com/ecosmart/shop/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// sendReply renders a query response as text: the reply first, then the
// recommended products, chunked to fit Telegram's message limit.
func (s *sender) sendReply(ctx context.Context, to tele.Recipient, resp *assistant.QueryResponse) error {
	logger := log.FromCtx(ctx)

	var sb strings.Builder
	sb.WriteString(resp.Reply)
	if len(resp.Products) > 0 {
		sb.WriteString("\n")
		for _, p := range resp.Products {
			sb.WriteString(fmt.Sprintf("\n• %s — $%.2f", p.Name, p.Price))
			if p.Carbon > 0 {
				sb.WriteString(fmt.Sprintf(" (carbon score %d)", p.Carbon))
			}
			if p.Eco != "" {
				sb.WriteString(" — " + p.Eco)
			}
		}
	}

	for i, chunk := range splitMessage(strings.TrimSpace(sb.String()), maxTelegramMsgLen) {
		if _, err := s.bot.Send(to, chunk); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitMessage splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		// Try to find a good break point (newline) in the second half of the chunk
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
