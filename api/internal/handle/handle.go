package handle

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/generative-ai-go/genai"

	"tutor-proxy/api/internal/ask"
	"tutor-proxy/api/internal/gemini"
	"tutor-proxy/api/internal/relay"
)

// Engine is the upstream surface the handlers depend on. The production
// implementation is *gemini.Client; tests supply fakes.
type Engine interface {
	Upload(ctx context.Context, name, mime string, data []byte) (*genai.File, error)
	Stream(ctx context.Context, tier ask.Tier, params gemini.GenParams, parts []genai.Part) relay.PullFunc
	Delete(ctx context.Context, name string) error
}

type Handle struct {
	eng Engine
	log *slog.Logger
}

func New(eng Engine, log *slog.Logger) *Handle {
	return &Handle{eng: eng, log: log}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
