package report

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
)

// ProjectCosts is the realized cost of one project, always derived on
// demand, never stored.
type ProjectCosts struct {
	ProjectID    string          `json:"project_id"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	Total        decimal.Decimal `json:"total"`
}

// ProjectRealization compares realized cost against the target budget
// (RAP).
type ProjectRealization struct {
	ProjectCosts
	ProjectName  string          `json:"project_name"`
	Status       string          `json:"status"`
	TargetBudget decimal.Decimal `json:"target_budget"`
	// UsagePercent is realized/target * 100, zero when no budget is set.
	UsagePercent decimal.Decimal `json:"usage_percent"`
}

// DashboardSummary is the landing-screen overview.
type DashboardSummary struct {
	CashBalance     decimal.Decimal      `json:"cash_balance"`
	TotalUnpaidDebt decimal.Decimal      `json:"total_unpaid_debt"`
	OverdueDebts    int                  `json:"overdue_debts"`
	ActiveProjects  []ProjectRealization `json:"active_projects"`
	WorkersToday    int                  `json:"workers_today"`
}

// DebtRow is one unpaid purchase in the aging report.
type DebtRow struct {
	PurchaseID string            `json:"purchase_id"`
	InvoiceNo  string            `json:"invoice_no"`
	VendorID   string            `json:"vendor_id"`
	VendorName string            `json:"vendor_name"`
	Amount     decimal.Decimal   `json:"amount"`
	DueDate    string            `json:"due_date,omitempty"`
	Urgency    purchase.TierInfo `json:"urgency"`
}

// DebtAging groups unpaid purchases by due-date urgency tier.
type DebtAging struct {
	Total decimal.Decimal             `json:"total"`
	Tiers map[purchase.Tier][]DebtRow `json:"tiers"`
}
