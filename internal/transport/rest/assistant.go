package rest

import (
	"errors"
	"net/http"

	"github.com/ecosmart/shop/internal/assistant"
	"github.com/ecosmart/shop/pkg/log"
)

type voiceQueryRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}

func (s *Server) handleVoiceQuery(w http.ResponseWriter, r *http.Request) {
	var req voiceQueryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.assistant.Query(r.Context(), req.SessionID, req.Text)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyQuery) {
			writeError(w, r, http.StatusBadRequest, "Text is required")
			return
		}
		log.FromCtx(r.Context()).Error().Err(err).Msg("voice query failed")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleVoiceStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.assistant.Status())
}
