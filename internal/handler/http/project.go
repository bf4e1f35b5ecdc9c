package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	store *store.Store
}

func NewProjectHandler(st *store.Store) ProjectHandler {
	return &ProjectHandlerImpl{store: st}
}

func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Projects())
}

func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, status := h.store.AddProject(r.Context(), req.ToEntity())
	response.CreatedRemote(w, status.Synced(), created)
}

func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, status, err := h.store.UpdateProject(r.Context(), id, req.Apply)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.store.DeleteProject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}
