// Package rest exposes the shop over HTTP: the voice assistant, the
// product catalog, and the category lookup tables.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ecosmart/shop/internal/assistant"
	"github.com/ecosmart/shop/internal/core"
	"github.com/ecosmart/shop/internal/pricing"
	"github.com/ecosmart/shop/pkg/log"
)

type Server struct {
	srv       *http.Server
	assistant *assistant.Assistant
	grocery   core.GroceryRepository
	other     core.OtherRepository
	pricer    *pricing.Client
}

func NewServer(
	addr string,
	asst *assistant.Assistant,
	grocery core.GroceryRepository,
	other core.OtherRepository,
	pricer *pricing.Client,
) *Server {
	s := &Server{
		assistant: asst,
		grocery:   grocery,
		other:     other,
		pricer:    pricer,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	voice := r.PathPrefix("/api/voice").Subrouter()
	voice.HandleFunc("/query", s.handleVoiceQuery).Methods(http.MethodPost, http.MethodOptions)
	voice.HandleFunc("/status", s.handleVoiceStatus).Methods(http.MethodGet, http.MethodOptions)

	grocery := r.PathPrefix("/api/products/grocery").Subrouter()
	grocery.HandleFunc("", s.handleCreateGrocery).Methods(http.MethodPost, http.MethodOptions)
	grocery.HandleFunc("", s.handleListGrocery).Methods(http.MethodGet)
	grocery.HandleFunc("/seller/{sellerId}", s.handleGrocerySeller).Methods(http.MethodGet)
	grocery.HandleFunc("/ml-data/{id}", s.handleGroceryMLData).Methods(http.MethodGet)
	grocery.HandleFunc("/{id}/price", s.handleGroceryPrice).Methods(http.MethodPatch, http.MethodOptions)
	grocery.HandleFunc("/{id}/best-price", s.handleGroceryBestPrice).Methods(http.MethodGet)
	grocery.HandleFunc("/{id}", s.handleUpdateGrocery).Methods(http.MethodPatch, http.MethodOptions)
	grocery.HandleFunc("/{id}", s.handleDeleteGrocery).Methods(http.MethodDelete, http.MethodOptions)

	other := r.PathPrefix("/api/products/other").Subrouter()
	other.HandleFunc("", s.handleCreateOther).Methods(http.MethodPost, http.MethodOptions)
	other.HandleFunc("", s.handleListOther).Methods(http.MethodGet)
	other.HandleFunc("/seller/{sellerId}", s.handleOtherSeller).Methods(http.MethodGet)
	other.HandleFunc("/ml-data/{id}", s.handleOtherMLData).Methods(http.MethodGet)
	other.HandleFunc("/{id}/price", s.handleOtherPrice).Methods(http.MethodPatch, http.MethodOptions)
	other.HandleFunc("/{id}/best-price", s.handleOtherBestPrice).Methods(http.MethodGet)
	other.HandleFunc("/{id}", s.handleUpdateOther).Methods(http.MethodPatch, http.MethodOptions)
	other.HandleFunc("/{id}", s.handleDeleteOther).Methods(http.MethodDelete, http.MethodOptions)

	cfg := r.PathPrefix("/api/config").Subrouter()
	cfg.HandleFunc("/grocery-categories", s.handleGroceryCategories).Methods(http.MethodGet)
	cfg.HandleFunc("/other-categories", s.handleOtherCategories).Methods(http.MethodGet)
	cfg.HandleFunc("/cities", s.handleCities).Methods(http.MethodGet)
	cfg.HandleFunc("/all", s.handleAllConfig).Methods(http.MethodGet)

	r.Use(corsMiddleware)
	r.Use(loggingMiddleware)

	return r
}

func (s *Server) Start(ctx context.Context) error {
	// Requests inherit the startup logger through the base context.
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
