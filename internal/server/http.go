package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(router *chi.Mux, cfg config.Server, logger *logger.Logger) *httpServer {
	handler := http.Handler(router)
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(router, cfg.RequestTimeout, "request timed out")
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("http server created")

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		// errors closing the listener
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
