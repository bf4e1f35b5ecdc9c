package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/report"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

var hundred = decimal.NewFromInt(100)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// ProjectCosts derives one project's realized cost against its budget.
func (s *Service) ProjectCosts(projectID string) (report.ProjectRealization, error) {
	p, ok := s.store.Project(projectID)
	if !ok {
		return report.ProjectRealization{}, project.ErrProjectNotFound
	}
	return s.realization(p), nil
}

func (s *Service) realization(p project.Project) report.ProjectRealization {
	costs := ProjectCosts(p.ID, s.store.Purchases(), s.store.Attendance())

	usage := decimal.Zero
	if p.TargetBudget.IsPositive() {
		usage = costs.Total.Div(p.TargetBudget).Mul(hundred)
	}

	return report.ProjectRealization{
		ProjectCosts: costs,
		ProjectName:  p.Name,
		Status:       string(p.Status),
		TargetBudget: p.TargetBudget,
		UsagePercent: usage,
	}
}

// Dashboard is the landing-screen overview: cash vs debt, active
// project realization, and today's headcount.
func (s *Service) Dashboard(today time.Time) report.DashboardSummary {
	summary := report.DashboardSummary{
		CashBalance:     s.store.CashBalance(),
		TotalUnpaidDebt: s.store.TotalUnpaidDebt(),
	}

	for _, p := range s.store.Projects() {
		if p.Status != project.StatusActive {
			continue
		}
		summary.ActiveProjects = append(summary.ActiveProjects, s.realization(p))
	}

	todayKey := today.Format("2006-01-02")
	for _, rec := range s.store.Attendance() {
		if rec.Date == todayKey {
			summary.WorkersToday++
		}
	}

	for _, rec := range s.store.Purchases() {
		if rec.Status != purchase.StatusUnpaid {
			continue
		}
		if info := classifyRecord(rec, today); info.Tier == purchase.TierOverdue {
			summary.OverdueDebts++
		}
	}

	return summary
}

// DebtAging groups every unpaid purchase by its due-date urgency tier.
func (s *Service) DebtAging(today time.Time) report.DebtAging {
	aging := report.DebtAging{
		Total: decimal.Zero,
		Tiers: make(map[purchase.Tier][]report.DebtRow),
	}

	vendors := make(map[string]string)
	for _, v := range s.store.Vendors() {
		vendors[v.ID] = v.Name
	}

	for _, rec := range s.store.Purchases() {
		if rec.Status != purchase.StatusUnpaid {
			continue
		}

		info := classifyRecord(rec, today)
		row := report.DebtRow{
			PurchaseID: rec.ID,
			InvoiceNo:  rec.InvoiceNo,
			VendorID:   rec.VendorID,
			VendorName: vendors[rec.VendorID],
			Amount:     rec.Total,
			DueDate:    rec.DueDate,
			Urgency:    info,
		}
		aging.Tiers[info.Tier] = append(aging.Tiers[info.Tier], row)
		aging.Total = aging.Total.Add(rec.Total)
	}

	return aging
}

func classifyRecord(rec purchase.Record, today time.Time) purchase.TierInfo {
	due, err := time.Parse("2006-01-02", rec.DueDate)
	if err != nil {
		due = time.Time{}
	}
	return purchase.ClassifyDueDate(due, today)
}
