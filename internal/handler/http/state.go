package http

import (
	"net/http"

	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

// StateHandler exposes the full derived state and the reload trigger.
type StateHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type StateHandlerImpl struct {
	store *store.Store
}

func NewStateHandler(st *store.Store) StateHandler {
	return &StateHandlerImpl{store: st}
}

func (h *StateHandlerImpl) GetState(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.State())
}

// Refresh re-fetches the remote snapshot. The reload is discarded when a
// local mutation lands while the fetch is in flight; applied tells the
// caller which way it went.
func (h *StateHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	applied, err := h.store.Refresh(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"applied": applied})
}

func (h *StateHandlerImpl) Ledger(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"balance": h.store.CashBalance(),
		"entries": h.store.LedgerEntries(),
	})
}
