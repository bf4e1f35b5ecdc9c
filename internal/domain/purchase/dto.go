package purchase

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
)

type LineItemInput struct {
	Name         string          `json:"name"`
	Qty          decimal.Decimal `json:"qty"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Total        decimal.Decimal `json:"total"`
	ProjectID    string          `json:"project_id"`
}

type CreatePurchaseRequest struct {
	InvoiceNo string          `json:"invoice_no"`
	Date      string          `json:"date"`
	VendorID  string          `json:"vendor_id"`
	Items     []LineItemInput `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	DueDate   string          `json:"due_date"`
}

func (r *CreatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InvoiceNo) {
		errs = append(errs, validator.ValidationError{Field: "invoice_no", Message: "invoice_no is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.VendorID) {
		errs = append(errs, validator.ValidationError{Field: "vendor_id", Message: "vendor_id is required"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one line item is required"})
	}

	sum := decimal.Zero
	for i, item := range r.Items {
		if validator.IsEmpty(item.Name) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "item " + validator.Itoa(i) + ": name is required"})
		}
		if validator.IsEmpty(item.ProjectID) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "item " + validator.Itoa(i) + ": project_id is required"})
		}
		if item.Total.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "item " + validator.Itoa(i) + ": total must not be negative"})
		}
		sum = sum.Add(item.Total)
	}

	// The invariant only holds at entry time; stored records are trusted.
	if len(r.Items) > 0 && !sum.Equal(r.Total) {
		errs = append(errs, validator.ValidationError{Field: "total", Message: ErrInvoiceTotalMismatch.Error()})
	}

	status := Status(r.Status)
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of unpaid, paid"})
	}
	if status != StatusPaid {
		if _, ok := validator.IsValidDate(r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: ErrDueDateRequired.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreatePurchaseRequest) ToEntity() Record {
	status := Status(r.Status)
	if status == "" {
		status = StatusUnpaid
	}

	items := make([]LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = LineItem{
			Name:         item.Name,
			Qty:          item.Qty,
			Unit:         item.Unit,
			PricePerUnit: item.PricePerUnit,
			Total:        item.Total,
			ProjectID:    item.ProjectID,
		}
	}

	return Record{
		InvoiceNo: r.InvoiceNo,
		Date:      r.Date,
		VendorID:  r.VendorID,
		Items:     items,
		Total:     r.Total,
		Status:    status,
		DueDate:   r.DueDate,
	}
}

type PayDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *PayDebtRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return validator.ValidationErrors{{Field: "amount", Message: "amount must be positive"}}
	}
	return nil
}
