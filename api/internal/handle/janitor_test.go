package handle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"

	"tutor-proxy/api/internal/ask"
	"tutor-proxy/api/internal/gemini"
	"tutor-proxy/api/internal/relay"
)

type flakyDeleter struct {
	mu       sync.Mutex
	failing  map[string]bool
	attempts []string
}

func (d *flakyDeleter) Upload(context.Context, string, string, []byte) (*genai.File, error) {
	return nil, errors.New("unused")
}

func (d *flakyDeleter) Stream(context.Context, ask.Tier, gemini.GenParams, []genai.Part) relay.PullFunc {
	return nil
}

func (d *flakyDeleter) Delete(ctx context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attempts = append(d.attempts, name)
	if d.failing[name] {
		return errors.New("permission denied")
	}
	return nil
}

func TestJanitor_ReleaseIsIdempotent(t *testing.T) {
	d := &flakyDeleter{}
	j := NewJanitor(d, slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"files/a", "files/b"})

	j.Release()
	j.Release()

	assert.Equal(t, []string{"files/a", "files/b"}, d.attempts)
}

func TestJanitor_OneFailureDoesNotStopOthers(t *testing.T) {
	d := &flakyDeleter{failing: map[string]bool{"files/a": true}}
	j := NewJanitor(d, slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"files/a", "files/b", "files/c"})

	j.Release()

	assert.Equal(t, []string{"files/a", "files/b", "files/c"}, d.attempts)
}

func TestJanitor_NoHandlesNoCalls(t *testing.T) {
	d := &flakyDeleter{}
	NewJanitor(d, slog.New(slog.NewTextHandler(io.Discard, nil)), nil).Release()

	assert.Empty(t, d.attempts)
}
