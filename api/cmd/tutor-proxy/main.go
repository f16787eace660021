package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"tutor-proxy/api/internal/config"
	"tutor-proxy/api/internal/gemini"
	"tutor-proxy/api/internal/handle"
	"tutor-proxy/api/internal/httpserver"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	eng, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.FastModel, cfg.AdvancedModel)
	if err != nil {
		log.Error("gemini client init failed", "err", err)
		os.Exit(1)
	}
	defer eng.Close()

	h := handle.New(eng, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("tutor-proxy"))
	})
	mux.HandleFunc("/api/ask", h.Ask)
	mux.HandleFunc("/api/meta", h.Meta)

	addr := ":" + cfg.Port
	log.Info("tutor-proxy listening", "addr", addr)
	if err := httpserver.Start(addr, mux); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
