package handle

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const releaseTimeout = 10 * time.Second

// Janitor owns the provider-side file handles created for one request and
// releases them when the stream tears down, whichever way it ends.
type Janitor struct {
	eng     Engine
	log     *slog.Logger
	handles []string
	once    sync.Once
}

func NewJanitor(eng Engine, log *slog.Logger, handles []string) *Janitor {
	return &Janitor{eng: eng, log: log, handles: handles}
}

// Release deletes every handle, each independently and best-effort. Safe to
// call more than once; only the first call does anything. It uses its own
// context: the request context is already cancelled when the client has
// disconnected.
func (j *Janitor) Release() {
	j.once.Do(func() {
		if len(j.handles) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		for _, name := range j.handles {
			if err := j.eng.Delete(ctx, name); err != nil {
				j.log.Warn("upload release failed", "handle", name, "err", err)
			}
		}
	})
}
