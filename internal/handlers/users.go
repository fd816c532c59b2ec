package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gatekit/gatekit/internal/directory"
	"github.com/gatekit/gatekit/internal/httpx"
	"github.com/gatekit/gatekit/internal/users"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UsersHandler serves the directory's users API. The list endpoint
// deliberately returns partial records: permission levels are only
// exposed by the by-id endpoint, which is why resolvers do a second hop.
type UsersHandler struct {
	Store   directory.Store
	Service *users.Service
}

func NewUsersHandler(store directory.Store, svc *users.Service) *UsersHandler {
	return &UsersHandler{Store: store, Service: svc}
}

type userView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type userBody struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Level directory.Level `json:"permissionLevel"`
}

type userDetail struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Level directory.Level `json:"permissionLevel"`
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	idents, err := h.Store.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "directory unavailable")
		return
	}
	out := make([]userView, len(idents))
	for i, ident := range idents {
		out[i] = userView{ID: ident.ID, Name: ident.Name, Email: ident.Email}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *UsersHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	ident, err := h.Store.GetByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userDetail{Name: ident.Name, Email: ident.Email, Level: ident.Level})
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body userBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ident, res, err := h.Service.Add(r.Context(), directory.Identity{
		Name:  body.Name,
		Email: body.Email,
		Level: body.Level,
	})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "directory unavailable")
		return
	}
	if !res.OK {
		slog.Info("user create rejected", "reason", res.Reason)
		httpx.WriteError(w, http.StatusBadRequest, res.Reason)
		return
	}

	w.Header().Set("Location", httpx.BaseURL(r)+"/api/users/"+ident.ID.String())
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"id": ident.ID.String()})
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var body userBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	res, err := h.Service.Update(r.Context(), directory.Identity{
		ID:    id,
		Name:  body.Name,
		Email: body.Email,
		Level: body.Level,
	})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "directory unavailable")
		return
	}
	if !res.OK {
		slog.Info("user update rejected", "reason", res.Reason)
		if res.NotFound {
			httpx.WriteError(w, http.StatusNotFound, res.Reason)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, res.Reason)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	res, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "directory unavailable")
		return
	}
	if !res.OK {
		httpx.WriteError(w, http.StatusNotFound, res.Reason)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
