package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	attendanceService "github.com/subkh4n/SIPILPRO-sub001/internal/service/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	store   *store.Store
	service *attendanceService.Service
}

func NewAttendanceHandler(st *store.Store, svc *attendanceService.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{store: st, service: svc}
}

func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records := h.store.Attendance()

	// Optional filters keep the daily entry screen light.
	if date := r.URL.Query().Get("date"); date != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Date == date {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.WorkerID == workerID {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	response.Success(w, records)
}

func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, status, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CreatedRemote(w, status.Synced(), created)
}

func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, status, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.service.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}
