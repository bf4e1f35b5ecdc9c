package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	store *store.Store
}

func NewHolidayHandler(st *store.Store) HolidayHandler {
	return &HolidayHandlerImpl{store: st}
}

func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Holidays())
}

func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, status := h.store.AddHoliday(r.Context(), req.ToEntity())
	response.CreatedRemote(w, status.Synced(), created)
}

func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, status, err := h.store.UpdateHoliday(r.Context(), id, func(e holiday.Entry) holiday.Entry {
		e.Date = req.Date
		e.Reason = req.Reason
		return e
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.store.DeleteHoliday(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}
