package purchase

import "errors"

// Purchase domain errors
var (
	ErrPurchaseNotFound     = errors.New("purchase record not found")
	ErrAlreadyPaid          = errors.New("purchase has already been paid")
	ErrInvoiceTotalMismatch = errors.New("line item totals do not match the invoice total")
	ErrDueDateRequired      = errors.New("unpaid purchase requires a due date")
)
