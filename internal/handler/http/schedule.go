package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/schedule"
	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	store *store.Store
}

func NewScheduleHandler(st *store.Store) ScheduleHandler {
	return &ScheduleHandlerImpl{store: st}
}

func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Schedules())
}

func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, status := h.store.AddSchedule(r.Context(), req.ToEntity())
	response.CreatedRemote(w, status.Synced(), created)
}

func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, status, err := h.store.UpdateSchedule(r.Context(), id, func(ws schedule.WorkSchedule) schedule.WorkSchedule {
		next := req.ToEntity()
		next.ID = ws.ID
		next.CreatedAt = ws.CreatedAt
		return next
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.store.DeleteSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}
