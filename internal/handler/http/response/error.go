package response

import (
	"errors"
	"net/http"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/grade"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/position"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/payroll"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/schedule"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/vendor"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not-found errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, vendor.ErrVendorNotFound):
		NotFound(w, "Vendor not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, purchase.ErrPurchaseNotFound):
		NotFound(w, "Purchase not found")
	case errors.Is(err, grade.ErrPayGradeNotFound):
		NotFound(w, "Pay grade not found")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Business rule errors
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "Session end must be after start", nil)
	case errors.Is(err, attendance.ErrNoSessions):
		BadRequest(w, "At least one session is required", nil)
	case errors.Is(err, payroll.ErrInvalidHours):
		BadRequest(w, "Hours worked must not be negative", nil)
	case errors.Is(err, purchase.ErrInvoiceTotalMismatch):
		BadRequest(w, "Invoice total does not match the sum of line items", nil)
	case errors.Is(err, purchase.ErrDueDateRequired):
		BadRequest(w, "Due date is required for unpaid purchases", nil)
	case errors.Is(err, purchase.ErrAlreadyPaid):
		Conflict(w, "Purchase is already paid")
	case errors.Is(err, store.ErrConflict):
		Conflict(w, "Record changed while the mutation was in flight")

	// Remote store errors surface only on reads and refreshes; mutations
	// report them through remote_synced instead.
	case errors.Is(err, remote.ErrNotConfigured):
		BadGateway(w, "Remote store is not configured")

	default:
		var remoteErr *remote.Error
		if errors.As(err, &remoteErr) {
			BadGateway(w, "Remote store is unavailable")
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
