package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gatekit/gatekit/internal/blog"
	"github.com/gatekit/gatekit/internal/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const summaryLength = 20

type ArticlesHandler struct {
	Repo    blog.Repository
	Service *blog.Service
}

func NewArticlesHandler(repo blog.Repository, svc *blog.Service) *ArticlesHandler {
	return &ArticlesHandler{Repo: repo, Service: svc}
}

type articleView struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
}

type articleBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func summarize(content string) string {
	if len(content) <= summaryLength {
		return content
	}
	return content[:summaryLength]
}

func (h *ArticlesHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Repo.List(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "repository unavailable")
		return
	}
	out := make([]articleView, len(articles))
	for i, a := range articles {
		out[i] = articleView{ID: a.ID, Title: a.Title, Summary: summarize(a.Content)}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ArticlesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid article id")
		return
	}
	a, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "article not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, articleBody{Title: a.Title, Content: a.Content})
}

func (h *ArticlesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body articleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	a, res, err := h.Service.Add(r.Context(), blog.Article{Title: body.Title, Content: body.Content})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "repository unavailable")
		return
	}
	if !res.OK {
		slog.Info("article create rejected", "reason", res.Reason)
		httpx.WriteError(w, http.StatusBadRequest, res.Reason)
		return
	}

	w.Header().Set("Location", httpx.BaseURL(r)+"/api/articles/"+a.ID.String())
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"id": a.ID.String()})
}

func (h *ArticlesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid article id")
		return
	}
	var body articleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	res, err := h.Service.Update(r.Context(), blog.Article{ID: id, Title: body.Title, Content: body.Content})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "repository unavailable")
		return
	}
	if !res.OK {
		slog.Info("article update rejected", "reason", res.Reason)
		if res.NotFound {
			httpx.WriteError(w, http.StatusNotFound, res.Reason)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, res.Reason)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ArticlesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid article id")
		return
	}
	res, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "repository unavailable")
		return
	}
	if !res.OK {
		httpx.WriteError(w, http.StatusNotFound, res.Reason)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
