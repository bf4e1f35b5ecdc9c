package report

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/report"
)

// ProjectCosts folds the full purchase and attendance sets into one
// project's realized cost. Every call is a fresh O(purchases+attendance)
// scan; nothing is cached or incrementally maintained, on purpose.
func ProjectCosts(projectID string, purchases []purchase.Record, records []attendance.Record) report.ProjectCosts {
	material := decimal.Zero
	for _, p := range purchases {
		// Cost is incurred on purchase, not on payment; paid and unpaid
		// invoices count alike.
		for _, item := range p.Items {
			if item.ProjectID == projectID {
				material = material.Add(item.Total)
			}
		}
	}

	labor := decimal.Zero
	for _, rec := range records {
		if rec.TotalHours <= 0 {
			continue
		}
		// The day's stored wage is split across the projects worked in
		// proportion to time spent; it is not re-derived per session.
		totalHours := decimal.NewFromFloat(rec.TotalHours)
		for _, sess := range rec.Sessions {
			if sess.ProjectID != projectID || sess.Duration <= 0 {
				continue
			}
			share := rec.Wage.Mul(decimal.NewFromFloat(sess.Duration)).Div(totalHours)
			labor = labor.Add(share)
		}
	}

	return report.ProjectCosts{
		ProjectID:    projectID,
		MaterialCost: material,
		LaborCost:    labor,
		Total:        material.Add(labor),
	}
}
