package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/justestif/go-spotify-now-playing/internal/nowplaying"
)

// PlaybackSource resolves the current playback state.
type PlaybackSource interface {
	Current(ctx context.Context) (nowplaying.TrackInfo, error)
}

// Handlers contains the HTTP handlers for the service.
type Handlers struct {
	source       PlaybackSource
	logger       *zap.SugaredLogger
	cacheControl string
}

// NewHandlers creates a Handlers instance. maxAge and staleWhileRevalidate
// are in seconds and drive the Cache-Control header on successful responses.
func NewHandlers(source PlaybackSource, logger *zap.SugaredLogger, maxAge, staleWhileRevalidate int) *Handlers {
	return &Handlers{
		source: source,
		logger: logger,
		cacheControl: fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
			maxAge, staleWhileRevalidate),
	}
}

// NowPlaying handles GET /api/now-playing.
func (h *Handlers) NowPlaying(w http.ResponseWriter, r *http.Request) {
	info, err := h.source.Current(r.Context())
	if err != nil {
		h.logger.Errorw("resolving playback state", "error", err)
		// Errors are not cacheable; no Cache-Control on this path.
		h.writeJSON(w, http.StatusInternalServerError, nowplaying.ErrorInfo(err))
		return
	}

	w.Header().Set("Cache-Control", h.cacheControl)
	h.writeJSON(w, http.StatusOK, info)
}

// Healthz handles GET /healthz.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warnw("writing response", "error", err)
	}
}
