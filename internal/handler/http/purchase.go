package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/vendor"
	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type PurchaseHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandlerImpl struct {
	store *store.Store
}

func NewPurchaseHandler(st *store.Store) PurchaseHandler {
	return &PurchaseHandlerImpl{store: st}
}

func (h *PurchaseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records := h.store.Purchases()

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := records[:0]
		for _, rec := range records {
			if string(rec.Status) == status {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	response.Success(w, records)
}

func (h *PurchaseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, ok := h.store.Purchase(id)
	if !ok {
		response.HandleError(w, purchase.ErrPurchaseNotFound)
		return
	}

	response.Success(w, rec)
}

func (h *PurchaseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req purchase.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.checkReferences(req); err != nil {
		response.HandleError(w, err)
		return
	}

	created, status := h.store.AddPurchase(r.Context(), req.ToEntity())
	response.CreatedRemote(w, status.Synced(), created)
}

func (h *PurchaseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req purchase.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.checkReferences(req); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, status, err := h.store.UpdatePurchase(r.Context(), id, func(cur purchase.Record) purchase.Record {
		next := req.ToEntity()
		next.ID = cur.ID
		next.CreatedAt = cur.CreatedAt
		return next
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), updated)
}

func (h *PurchaseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	status, err := h.store.DeletePurchase(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), nil)
}

func (h *PurchaseHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req purchase.PayDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	paid, status, err := h.store.PayDebt(r.Context(), id, req.Amount)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.MutatedRemote(w, status.Synced(), paid)
}

func (h *PurchaseHandlerImpl) checkReferences(req purchase.CreatePurchaseRequest) error {
	found := false
	for _, v := range h.store.Vendors() {
		if v.ID == req.VendorID {
			found = true
			break
		}
	}
	if !found {
		return vendor.ErrVendorNotFound
	}

	for _, item := range req.Items {
		if _, ok := h.store.Project(item.ProjectID); !ok {
			return project.ErrProjectNotFound
		}
	}
	return nil
}
