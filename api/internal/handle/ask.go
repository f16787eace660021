package handle

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"tutor-proxy/api/internal/ask"
	"tutor-proxy/api/internal/gemini"
	"tutor-proxy/api/internal/prompt"
	"tutor-proxy/api/internal/relay"
)

// --- ASK (STREAMING) --------------------------------------------------------

// Ask answers a student question as a server-sent event stream: zero or more
// `data:` fragments followed by exactly one terminal, `event: end` on success
// or `event: error` on upstream failure. Validation problems are rejected
// with a 400 before anything is sent upstream.
func (h *Handle) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	req, err := ask.Normalize(r.Body)
	if err != nil {
		switch {
		case errors.Is(err, ask.ErrInvalidBoard),
			errors.Is(err, ask.ErrMissingQuestion),
			errors.Is(err, ask.ErrQuestionTooLong):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		}
		return
	}

	log := h.log.With(
		"request_id", uuid.NewString(),
		"board", req.Board,
		"class", req.ClassLevel,
		"subject", req.Subject,
		"tier", string(req.Tier),
	)

	kind := prompt.Classify(req.Question)
	params := gemini.AcademicParams
	if kind == prompt.Casual {
		params = gemini.CasualParams
	}
	instruction := prompt.Build(kind, req.Board, req.ClassLevel, req.Subject, req.Chapter, req.Question)

	parts, handles := ask.Assemble(r.Context(), log, h.eng, req, instruction)

	jan := NewJanitor(h.eng, log, handles)
	defer jan.Release()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	flusher.Flush()

	log.Info("stream start", "kind", kind.String(), "attachments", len(req.Files), "uploads", len(handles))

	pull := h.eng.Stream(r.Context(), req.Tier, params, parts)
	fragments := 0
	for ev := range relay.Stream(r.Context(), pull) {
		switch ev.Kind {
		case relay.Fragment:
			b, _ := json.Marshal(ev.Text)
			fmt.Fprintf(w, "data: %s\n\n", b)
			fragments++
		case relay.End:
			fmt.Fprint(w, "event: end\ndata: done\n\n")
			log.Info("stream end", "fragments", fragments)
		case relay.Error:
			fmt.Fprintf(w, "event: error\ndata: %s\n\n", ev.Text)
			log.Error("stream failed", "fragments", fragments, "err", ev.Text)
		}
		flusher.Flush()
	}
}
