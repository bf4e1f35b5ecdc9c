package store

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/ledger"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/grade"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/position"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/schedule"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/vendor"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
)

// Read accessors return copies; callers never hold references into the
// mirror's own state.

func (s *Store) Workers() []worker.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]worker.Worker, 0, len(s.workers))
	for _, w := range s.workers {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Worker(id string) (worker.Worker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workers[id]
	return w, ok
}

func (s *Store) Projects() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]project.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Project(id string) (project.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	return p, ok
}

func (s *Store) Vendors() []vendor.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]vendor.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Attendance() []attendance.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]attendance.Record, 0, len(s.attendances))
	for _, a := range s.attendances {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) AttendanceRecord(id string) (attendance.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attendances[id]
	return a, ok
}

func (s *Store) Purchases() []purchase.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]purchase.Record, 0, len(s.purchases))
	for _, p := range s.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) Purchase(id string) (purchase.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.purchases[id]
	return p, ok
}

func (s *Store) Holidays() []holiday.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]holiday.Entry, 0, len(s.holidays))
	for _, h := range s.holidays {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (s *Store) PayGrades() []grade.PayGrade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]grade.PayGrade, 0, len(s.payGrades))
	for _, g := range s.payGrades {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Schedules() []schedule.WorkSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schedule.WorkSchedule, 0, len(s.schedules))
	for _, ws := range s.schedules {
		out = append(out, ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Positions() []position.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]position.Position, 0, len(s.positions))
	for _, p := range s.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CashBalance folds the ledger entries. Always derived, never a stored
// scalar, so it cannot drift from what a reload would recompute.
func (s *Store) CashBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.Balance(s.entries)
}

func (s *Store) LedgerEntries() []ledger.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalUnpaidDebt sums the header totals of every unpaid purchase.
func (s *Store) TotalUnpaidDebt() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, p := range s.purchases {
		if p.Status == purchase.StatusUnpaid {
			total = total.Add(p.Total)
		}
	}
	return total
}

// State is the full read-only snapshot the UI consumes.
type State struct {
	Workers         []worker.Worker         `json:"workers"`
	Projects        []project.Project       `json:"projects"`
	Vendors         []vendor.Vendor         `json:"vendors"`
	Attendance      []attendance.Record     `json:"attendance"`
	Purchases       []purchase.Record       `json:"purchases"`
	Holidays        []holiday.Entry         `json:"holidays"`
	PayGrades       []grade.PayGrade        `json:"pay_grades"`
	Schedules       []schedule.WorkSchedule `json:"schedules"`
	Positions       []position.Position     `json:"positions"`
	CashBalance     decimal.Decimal         `json:"cash_balance"`
	TotalUnpaidDebt decimal.Decimal         `json:"total_unpaid_debt"`
}

func (s *Store) State() State {
	return State{
		Workers:         s.Workers(),
		Projects:        s.Projects(),
		Vendors:         s.Vendors(),
		Attendance:      s.Attendance(),
		Purchases:       s.Purchases(),
		Holidays:        s.Holidays(),
		PayGrades:       s.PayGrades(),
		Schedules:       s.Schedules(),
		Positions:       s.Positions(),
		CashBalance:     s.CashBalance(),
		TotalUnpaidDebt: s.TotalUnpaidDebt(),
	}
}
