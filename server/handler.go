package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scipunch/newslist/fetcher/types"
	"github.com/scipunch/newslist/page"
	"github.com/scipunch/newslist/render"
)

// PageSource builds a fresh page for every request
type PageSource func() (*page.Page, error)

type Handler struct {
	log      *slog.Logger
	source   PageSource
	renderer *render.Renderer
	loader   types.Loader
}

func NewHandler(log *slog.Logger, source PageSource, renderer *render.Renderer, loader types.Loader) *Handler {
	return &Handler{
		log:      log,
		source:   source,
		renderer: renderer,
		loader:   loader,
	}
}

// home serves GET /. Each request is one page load with one feed request.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	const op = "server/home"
	log := h.log.With(slog.String("op", op))

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		log.Warn("method not allowed", slog.String("method", r.Method))
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := h.source()
	if err != nil {
		log.Error("failed to build page", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	select {
	case <-h.renderer.Init(r.Context(), p, h.loader):
	case <-r.Context().Done():
		log.Info("client went away before the feed loaded", slog.Any("error", r.Context().Err()))
		return
	}

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		log.Error("failed to render page", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
