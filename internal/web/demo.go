package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/sse"
)

// DemoStream handles GET /demos/{script}/stream. Each connection gets its
// own player, triggered on connect and stopped when the client goes away.
func (h *Handler) DemoStream(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "script")
	script, ok := h.scripts.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	frames := make(chan sequencer.Frame, 16)
	player, err := sequencer.NewPlayer(script, func(f sequencer.Frame) {
		select {
		case frames <- f:
		default:
			// Slow client; the next frame carries the full state anyway.
		}
	})
	if err != nil {
		h.logger.Error("demo player init failed", slog.String("script", name), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer player.Stop()

	flusher, ok := sse.Prepare(w)
	if !ok {
		return
	}
	player.Trigger()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-frames:
			raw, err := sse.Encode(sse.Event{Type: "frame", Data: f})
			if err != nil {
				h.logger.Error("encode frame failed", slog.String("error", err.Error()))
				return
			}
			if _, err := w.Write(raw); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
