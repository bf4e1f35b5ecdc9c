package purchase

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	Name         string          `json:"name"`
	Qty          decimal.Decimal `json:"qty"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Total        decimal.Decimal `json:"total"`
	ProjectID    string          `json:"project_id"`
}

// Record is one supplier invoice. An unpaid record is a debt (hutang)
// tracked by its due date until settled. The line-item totals must sum to
// Total; the entry boundary enforces this before the record is accepted.
type Record struct {
	ID        string          `json:"id"`
	InvoiceNo string          `json:"invoice_no"`
	Date      string          `json:"date"`
	VendorID  string          `json:"vendor_id"`
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    Status          `json:"status"`
	DueDate   string          `json:"due_date,omitempty"`
	PaidDate  string          `json:"paid_date,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

var StatusValues = []string{
	string(StatusUnpaid),
	string(StatusPaid),
}
