package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/payroll"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

// Service produces the payroll recap over a date range. Under the
// rederive policy the wage is recomputed from the worker's current rates
// and the stored hours, so the recap tracks rate changes; under snapshot
// it sums the wages stored on the records.
type Service struct {
	store  *store.Store
	policy payroll.Policy
}

func NewService(st *store.Store, policy payroll.Policy) *Service {
	if policy == "" {
		policy = payroll.PolicyRederive
	}
	return &Service{store: st, policy: policy}
}

func (s *Service) Policy() payroll.Policy {
	return s.policy
}

// Recap aggregates per worker over the inclusive [from, to] date range.
func (s *Service) Recap(from, to string) (payroll.Recap, error) {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(from); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(to); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return payroll.Recap{}, errs
	}

	rows := make(map[string]*payroll.RecapRow)
	grand := decimal.Zero

	for _, rec := range s.store.Attendance() {
		// ISO dates compare correctly as strings.
		if rec.Date < from || rec.Date > to {
			continue
		}

		wage := rec.Wage
		name := rec.WorkerID
		if w, ok := s.store.Worker(rec.WorkerID); ok {
			name = w.Name
			if s.policy == payroll.PolicyRederive {
				if derived, err := payroll.CalculateWage(rec.TotalHours, w.Rates, rec.IsHoliday); err == nil {
					wage = derived
				}
			}
		}

		row, ok := rows[rec.WorkerID]
		if !ok {
			row = &payroll.RecapRow{WorkerID: rec.WorkerID, WorkerName: name}
			rows[rec.WorkerID] = row
		}
		row.Days++
		row.TotalHours += rec.TotalHours
		if rec.IsHoliday {
			row.HolidayHours += rec.TotalHours
		}
		row.TotalWage = row.TotalWage.Add(wage)
		grand = grand.Add(wage)
	}

	out := make([]payroll.RecapRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkerName < out[j].WorkerName })

	return payroll.Recap{
		From:       from,
		To:         to,
		Policy:     s.policy,
		Rows:       out,
		GrandTotal: grand,
	}, nil
}
