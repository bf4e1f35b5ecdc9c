package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one signed cash movement. The ledger is append-only; the cash
// balance is always a fold over the entries, never a stored scalar.
type Entry struct {
	ID     string          `json:"id"`
	At     time.Time       `json:"at"`
	Amount decimal.Decimal `json:"amount"` // negative = cash out
	Cause  Cause           `json:"cause"`
	RefID  string          `json:"ref_id,omitempty"` // purchase id for purchase/payment causes
	Note   string          `json:"note,omitempty"`
}

type Cause string

const (
	CauseInitial  Cause = "initial_balance"
	CausePurchase Cause = "paid_purchase"
	CausePayment  Cause = "debt_payment"
)

// Balance folds the entries into the current cash balance.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
