package purchase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
)

func validRequest() CreatePurchaseRequest {
	return CreatePurchaseRequest{
		InvoiceNo: "INV-001",
		Date:      "2026-09-01",
		VendorID:  "v1",
		Items: []LineItemInput{
			{Name: "Semen", Qty: decimal.NewFromInt(10), Unit: "sak", PricePerUnit: decimal.NewFromInt(60000), Total: decimal.NewFromInt(600000), ProjectID: "p1"},
			{Name: "Pasir", Qty: decimal.NewFromInt(2), Unit: "m3", PricePerUnit: decimal.NewFromInt(200000), Total: decimal.NewFromInt(400000), ProjectID: "p1"},
		},
		Total:   decimal.NewFromInt(1000000),
		Status:  "unpaid",
		DueDate: "2026-09-15",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestCreatePurchaseRequestValid(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())

	rec := req.ToEntity()
	assert.Equal(t, StatusUnpaid, rec.Status)
	assert.Len(t, rec.Items, 2)
	assert.True(t, rec.Total.Equal(decimal.NewFromInt(1000000)))
}

func TestCreatePurchaseRequestTotalMismatch(t *testing.T) {
	req := validRequest()
	req.Total = decimal.NewFromInt(999999)

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "total")
}

func TestCreatePurchaseRequestDueDateRequiredWhenUnpaid(t *testing.T) {
	req := validRequest()
	req.DueDate = ""

	details := fieldErrors(t, req.Validate())
	assert.Contains(t, details, "due_date")
}

func TestCreatePurchaseRequestPaidNeedsNoDueDate(t *testing.T) {
	req := validRequest()
	req.Status = "paid"
	req.DueDate = ""

	assert.NoError(t, req.Validate())
}

func TestCreatePurchaseRequestDefaultsToUnpaid(t *testing.T) {
	req := validRequest()
	req.Status = ""

	require.NoError(t, req.Validate())
	assert.Equal(t, StatusUnpaid, req.ToEntity().Status)
}

func TestPayDebtRequestRejectsNonPositiveAmount(t *testing.T) {
	req := PayDebtRequest{Amount: decimal.Zero}
	assert.Error(t, req.Validate())

	req.Amount = decimal.NewFromInt(-5)
	assert.Error(t, req.Validate())

	req.Amount = decimal.NewFromInt(5)
	assert.NoError(t, req.Validate())
}
