package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/pkg/log"
)

// Response modes. The fallback mode keeps the success schema so callers
// never see an external-service failure.
const (
	ModeEnhancedBasic = "enhanced_basic"
	ModeAdvancedAI    = "advanced_ai_powered"
	ModeFallback      = "enhanced_basic_fallback"

	actionAdvancedAI = "advanced_ai_response"

	// localReplySuffix marks template-composed replies.
	localReplySuffix = " 🤖"
)

// ErrEmptyQuery is the only error Query surfaces to callers.
var ErrEmptyQuery = errors.New("text is required")

// QueryResponse is the reply envelope for one voice query.
type QueryResponse struct {
	Query              string                 `json:"query"`
	Reply              string                 `json:"reply"`
	Action             string                 `json:"action"`
	Products           []core.ProductMention  `json:"products"`
	Context            core.ContextDescriptor `json:"context"`
	Mode               string                 `json:"mode"`
	ConversationLength int                    `json:"conversationLength"`
	Timestamp          string                 `json:"timestamp"`
}

// StatusResponse reports whether the external generator is wired in.
type StatusResponse struct {
	Status    string `json:"status"`
	Mode      string `json:"mode"`
	FreeAI    bool   `json:"freeAI"`
	Timestamp string `json:"timestamp"`
}

// Assistant runs the conversational pipeline: context analysis, intent
// classification, recommendation, composition, then session update.
type Assistant struct {
	store     *Store
	generator TextGenerator // nil means local-only composition
	local     LocalComposer
}

// New creates an Assistant. Pass a nil generator to run local-only.
func New(store *Store, generator TextGenerator) *Assistant {
	return &Assistant{store: store, generator: generator}
}

// Query processes one utterance for a session and returns the reply
// envelope. The only error condition is empty text; every downstream
// failure is absorbed into a local-mode reply.
func (a *Assistant) Query(ctx context.Context, sessionKey, text string) (*QueryResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}
	if sessionKey == "" {
		sessionKey = core.DefaultSessionKey
	}

	logger := log.FromCtx(ctx)

	snap := a.store.Get(sessionKey)
	desc := AnalyzeContext(text, snap)
	cls := Classify(text)
	products := Recommend(cls.Intent, cls.PriceCeiling, desc)

	logger.Debug().
		Str("session", sessionKey).
		Str("intent", string(cls.Intent)).
		Int("price_ceiling", cls.PriceCeiling).
		Bool("previous_ref", desc.IsPreviousRef).
		Msg("voice query classified")

	mode := ModeEnhancedBasic
	action := cls.Intent.Action()
	var reply string

	if a.generator != nil {
		generated, err := a.generator.Generate(ctx, BuildPrompt(text, desc))
		if err != nil {
			logger.Warn().Err(err).Msg("text generation failed, falling back to local composer")
			reply = a.local.Compose(text, cls) + localReplySuffix
			mode = ModeFallback
		} else {
			reply = generated
			mode = ModeAdvancedAI
			action = actionAdvancedAI
		}
	} else {
		reply = a.local.Compose(text, cls) + localReplySuffix
	}

	// Session update runs before the reply is returned so the same
	// session's next query observes this exchange.
	length := a.store.AppendExchange(sessionKey, text, reply)
	a.store.AppendProducts(sessionKey, products)

	return &QueryResponse{
		Query:              text,
		Reply:              reply,
		Action:             action,
		Products:           products,
		Context:            desc,
		Mode:               mode,
		ConversationLength: length,
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Status reports the assistant's operating mode.
func (a *Assistant) Status() StatusResponse {
	mode := "Basic NLP"
	if a.generator != nil {
		mode = "AI-Powered (Gemini)"
	}
	return StatusResponse{
		Status:    "Voice Assistant is running",
		Mode:      mode,
		FreeAI:    true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
