package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/grade"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/position"
	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

// MasterHandler serves the master-data screens: pay grade presets and
// job positions.
type MasterHandler interface {
	ListPayGrades(w http.ResponseWriter, r *http.Request)
	CreatePayGrade(w http.ResponseWriter, r *http.Request)
	UpdatePayGrade(w http.ResponseWriter, r *http.Request)
	DeletePayGrade(w http.ResponseWriter, r *http.Request)

	ListPositions(w http.ResponseWriter, r *http.Request)
	CreatePosition(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	store *store.Store
}

func NewMasterHandler(st *store.Store) MasterHandler {
	return &MasterHandlerImpl{store: st}
}

func (h *MasterHandlerImpl) ListPayGrades(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.PayGrades())
}

func (h *MasterHandlerImpl) CreatePayGrade(w http.ResponseWriter, r *http.Request) {
	var req grade.UpsertPayGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, status := h.store.AddPayGrade(r.Context(), req.ToEntity())
	response.CreatedRemote(w, status.Synced(), created)
}

func (h *MasterHandlerImpl) UpdatePayGrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req grade.UpsertPayGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, status, err := h.store.UpdatePayGrade(r.Context(), id, func(g grade.PayGrade) grade.PayGrade {
		next := req.ToEntity()
		next.ID = g.ID
		next.CreatedAt = g.CreatedAt
		return next
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *MasterHandlerImpl) DeletePayGrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.store.DeletePayGrade(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}

func (h *MasterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Positions())
}

func (h *MasterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req position.UpsertPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, status := h.store.AddPosition(r.Context(), position.Position{Name: req.Name})
	response.CreatedRemote(w, status.Synced(), created)
}

func (h *MasterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req position.UpsertPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, status, err := h.store.UpdatePosition(r.Context(), id, func(p position.Position) position.Position {
		p.Name = req.Name
		return p
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *MasterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.store.DeletePosition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}
