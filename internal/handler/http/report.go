package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/subkh4n/SIPILPRO-sub001/internal/handler/http/response"
	payrollService "github.com/subkh4n/SIPILPRO-sub001/internal/service/payroll"
	reportService "github.com/subkh4n/SIPILPRO-sub001/internal/service/report"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	ProjectCosts(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
	Debts(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reports *reportService.Service
	payroll *payrollService.Service
}

func NewReportHandler(reports *reportService.Service, payroll *payrollService.Service) ReportHandler {
	return &ReportHandlerImpl{reports: reports, payroll: payroll}
}

func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reports.Dashboard(time.Now()))
}

func (h *ReportHandlerImpl) ProjectCosts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	costs, err := h.reports.ProjectCosts(id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, costs)
}

// Payroll aggregates wages per worker over ?from=...&to=... (inclusive,
// YYYY-MM-DD). Defaults to the current month.
func (h *ReportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" && to == "" {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
		to = now.Format("2006-01-02")
	}

	recap, err := h.payroll.Recap(from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recap)
}

func (h *ReportHandlerImpl) Debts(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reports.DebtAging(time.Now()))
}
