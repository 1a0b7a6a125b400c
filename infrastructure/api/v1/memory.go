// Package v1 implements the v1 REST routes of the TM server.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tmkit/tmkit"
	"github.com/tmkit/tmkit/domain/tm"
	"github.com/tmkit/tmkit/infrastructure/api/middleware"
	"github.com/tmkit/tmkit/infrastructure/api/v1/dto"
)

// MemoryRouter handles translation-memory API endpoints.
type MemoryRouter struct {
	client *tmkit.Client
	logger *slog.Logger
}

// NewMemoryRouter creates a MemoryRouter.
func NewMemoryRouter(client *tmkit.Client, logger *slog.Logger) *MemoryRouter {
	if logger == nil {
		logger = client.Logger()
	}
	return &MemoryRouter{client: client, logger: logger}
}

// Routes returns the chi router for memory endpoints.
func (r *MemoryRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stats", r.Stats)
	router.Route("/{sourceLang}/{targetLang}", func(rt chi.Router) {
		rt.Get("/unit/{text}", r.Suggest)
		rt.Put("/unit/{text}", r.AddUnit)
		rt.Post("/store", r.UploadStore)
	})

	return router
}

// Suggest handles GET /{sourceLang}/{targetLang}/unit/{text}: ranked
// fuzzy-match suggestions for the (URL-escaped) source text.
func (r *MemoryRouter) Suggest(w http.ResponseWriter, req *http.Request) {
	sourceLang, targetLang := langParams(req)
	text := pathParam(req, "text")

	matches, err := r.client.Memory.SuggestBetween(req.Context(), text, sourceLang, targetLang)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := dto.SuggestResponse{Matches: make([]dto.Match, len(matches))}
	for i, m := range matches {
		response.Matches[i] = dto.Match{
			Source:  m.Source(),
			Target:  m.Target(),
			Context: m.Context(),
			Quality: m.Quality(),
		}
	}
	middleware.WriteJSON(w, http.StatusOK, response)
}

// AddUnit handles PUT /{sourceLang}/{targetLang}/unit/{text}: stores the
// translation carried in the body for the source text in the path.
func (r *MemoryRouter) AddUnit(w http.ResponseWriter, req *http.Request) {
	sourceLang, targetLang := langParams(req)
	text := pathParam(req, "text")

	var body dto.UnitUpload
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	unit := tm.NewRecord(text, body.Target, body.Context)
	if err := r.client.Memory.AddUnit(req.Context(), unit, sourceLang, targetLang); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadStore handles POST /{sourceLang}/{targetLang}/store: bulk upload of
// units as a JSON array, inserted in one transaction.
func (r *MemoryRouter) UploadStore(w http.ResponseWriter, req *http.Request) {
	sourceLang, targetLang := langParams(req)

	var body []dto.UnitRecord
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	units := make([]tm.Unit, len(body))
	for i, rec := range body {
		units[i] = tm.NewRecord(rec.Source, rec.Target, rec.Context)
	}

	count, err := r.client.Memory.AddBatch(req.Context(), units, sourceLang, targetLang)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.StoreUploadResponse{Count: count})
}

// Stats handles GET /stats.
func (r *MemoryRouter) Stats(w http.ResponseWriter, req *http.Request) {
	count, err := r.client.Memory.Stats(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, dto.StatsResponse{Records: count})
}

func langParams(req *http.Request) (string, string) {
	return pathParam(req, "sourceLang"), pathParam(req, "targetLang")
}

// pathParam returns the unescaped route parameter, falling back to the raw
// value when it is not valid percent-encoding.
func pathParam(req *http.Request, name string) string {
	raw := chi.URLParam(req, name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}
