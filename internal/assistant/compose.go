package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecosmart/shop/internal/core"
)

// TextGenerator produces a reply from a prompt, or fails. Implementations
// wrap external generative services; any failure makes the composer fall
// back to local templates.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LocalComposer renders deterministic template replies. Same classification
// in, same string out, no I/O.
type LocalComposer struct{}

func (LocalComposer) Compose(text string, c Classification) string {
	switch c.Intent {
	case IntentPhones:
		reply := "📱 Fantastic! I've found some incredible eco-friendly smartphones! These devices are crafted with recycled materials and feature energy-efficient processors."
		if c.PriceCeiling > 0 {
			reply += fmt.Sprintf(" I've filtered options under $%d for you!", c.PriceCeiling)
		}
		if c.Sentiment == SentimentPositive {
			reply += " You're going to love these sustainable choices! 🌱"
		}
		return reply

	case IntentLaptops:
		reply := "💻 Excellent choice! Our sustainable laptops combine powerful performance with environmental responsibility."
		if c.PriceCeiling > 0 {
			reply += fmt.Sprintf(" Here are the best eco-friendly options under $%d!", c.PriceCeiling)
		}
		return reply + " Features include energy-efficient processors and recycled aluminum bodies. 🔋"

	case IntentFood:
		reply := "🥗 Perfect! Our organic food selection features locally sourced, sustainable options with minimal packaging."
		if c.Sentiment == SentimentSeeking {
			reply += " I'll help you find exactly what you need!"
		}
		return reply + " Every product includes detailed carbon footprint information. 🌱"

	case IntentElectronics:
		reply := "⚡ Amazing! Check out our sustainable electronics collection! Solar-powered devices, energy-efficient gadgets, and eco-friendly tech accessories."
		if c.PriceCeiling > 0 {
			reply += fmt.Sprintf(" I've found great options under $%d!", c.PriceCeiling)
		}
		return reply

	case IntentSustainability:
		return "🌍 You're making a fantastic choice caring about sustainability! All our products have detailed carbon footprint calculations. Lower scores mean better environmental impact. Green badges highlight our most eco-friendly choices! 🌱✨"

	case IntentRewards:
		return "🎁 Love your eco-conscious shopping! You earn EcoPoints for every sustainable purchase! 💰 1 point per dollar spent. Redeem 100 points for $5 discount on future eco-friendly products! Keep saving the planet! 🌟"

	case IntentHelp:
		return "🤖 Hi there! I'm your eco-friendly shopping assistant! I can help you: 🛍️ Find sustainable products, 🌱 Check carbon footprints, 💰 Compare eco-prices, 🎁 Explain rewards, and 🌍 Answer sustainability questions! What sustainable adventure shall we start with? ✨"

	default:
		return fmt.Sprintf("🎤 I heard \"%s\" and I'm excited to help! 🌟 I specialize in eco-friendly products that are good for you AND the planet! 🌍 Try asking about sustainable phones, green laptops, or organic food. What eco-friendly product can I help you discover today? 🛍️✨", text)
	}
}

// BuildPrompt assembles the external-mode prompt: the utterance, a summary
// of conversational context, and the fixed assistant instructions.
func BuildPrompt(text string, desc core.ContextDescriptor) string {
	var contextInfo strings.Builder
	if desc.IsPreviousRef && len(desc.RecentProducts) > 0 {
		names := make([]string, len(desc.RecentProducts))
		for i, p := range desc.RecentProducts {
			names[i] = p.Name
		}
		fmt.Fprintf(&contextInfo, "\nContext: User previously asked about: %s", strings.Join(names, ", "))
	}
	if len(desc.RecentQueries) > 0 {
		queries := desc.RecentQueries
		if len(queries) > 2 {
			queries = queries[len(queries)-2:]
		}
		texts := make([]string, len(queries))
		for i, q := range queries {
			texts[i] = q.Query
		}
		fmt.Fprintf(&contextInfo, "\nRecent queries: %s", strings.Join(texts, ", "))
	}

	return fmt.Sprintf(`You are an advanced eco-friendly shopping assistant for EcoSmart Shop with conversation memory.

User asked: "%s"
%s

ADVANCED INSTRUCTIONS:
1. If user refers to "earlier/previous/that" - reference their recent products/queries
2. If asking for "comparison" - compare specific products they mentioned
3. If asking for "more/another" - suggest different products in same category
4. Always be contextually aware and conversational
5. Include WHY products are eco-friendly (recycled materials, energy efficiency, etc.)
6. Mention specific sustainability benefits
7. Keep response under 90 words but be helpful
8. Use relevant emojis naturally

Respond as a smart assistant who remembers the conversation:`, text, contextInfo.String())
}
