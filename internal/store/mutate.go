package store

import (
	"context"
	"time"

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
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
)

// ========== WORKERS ==========

func (s *Store) AddWorker(ctx context.Context, w worker.Worker) (worker.Worker, RemoteStatus) {
	now := time.Now()
	w.ID = newLocalID()
	w.CreatedAt, w.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindWorkers, w.ID, w)
	w.ID = id

	s.mu.Lock()
	s.workers[w.ID] = w
	s.bumpLocked(remote.KindWorkers, w.ID)
	s.mu.Unlock()
	return w, status
}

func (s *Store) UpdateWorker(ctx context.Context, id string, patch func(worker.Worker) worker.Worker) (worker.Worker, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.workers[id]
	base := s.revs[revKey{remote.KindWorkers, id}]
	s.mu.RUnlock()
	if !ok {
		return worker.Worker{}, RemoteFailed, worker.ErrWorkerNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindWorkers, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindWorkers, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindWorkers, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "workers", "id", id)
		return worker.Worker{}, status, ErrConflict
	}
	s.workers[id] = updated
	s.bumpLocked(remote.KindWorkers, id)
	return updated, status, nil
}

func (s *Store) DeleteWorker(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.workers[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, worker.ErrWorkerNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindWorkers, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindWorkers, id)
	})

	s.mu.Lock()
	delete(s.workers, id)
	s.bumpLocked(remote.KindWorkers, id)
	s.mu.Unlock()
	return status, nil
}

// ========== PROJECTS ==========

func (s *Store) AddProject(ctx context.Context, p project.Project) (project.Project, RemoteStatus) {
	now := time.Now()
	p.ID = newLocalID()
	p.CreatedAt, p.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindProjects, p.ID, p)
	p.ID = id

	s.mu.Lock()
	s.projects[p.ID] = p
	s.bumpLocked(remote.KindProjects, p.ID)
	s.mu.Unlock()
	return p, status
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch func(project.Project) project.Project) (project.Project, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.projects[id]
	base := s.revs[revKey{remote.KindProjects, id}]
	s.mu.RUnlock()
	if !ok {
		return project.Project{}, RemoteFailed, project.ErrProjectNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindProjects, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindProjects, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindProjects, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "projects", "id", id)
		return project.Project{}, status, ErrConflict
	}
	s.projects[id] = updated
	s.bumpLocked(remote.KindProjects, id)
	return updated, status, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.projects[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, project.ErrProjectNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindProjects, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindProjects, id)
	})

	s.mu.Lock()
	delete(s.projects, id)
	s.bumpLocked(remote.KindProjects, id)
	s.mu.Unlock()
	return status, nil
}

// ========== VENDORS ==========

func (s *Store) AddVendor(ctx context.Context, v vendor.Vendor) (vendor.Vendor, RemoteStatus) {
	now := time.Now()
	v.ID = newLocalID()
	v.CreatedAt, v.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindVendors, v.ID, v)
	v.ID = id

	s.mu.Lock()
	s.vendors[v.ID] = v
	s.bumpLocked(remote.KindVendors, v.ID)
	s.mu.Unlock()
	return v, status
}

func (s *Store) UpdateVendor(ctx context.Context, id string, patch func(vendor.Vendor) vendor.Vendor) (vendor.Vendor, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.vendors[id]
	base := s.revs[revKey{remote.KindVendors, id}]
	s.mu.RUnlock()
	if !ok {
		return vendor.Vendor{}, RemoteFailed, vendor.ErrVendorNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindVendors, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindVendors, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindVendors, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "vendors", "id", id)
		return vendor.Vendor{}, status, ErrConflict
	}
	s.vendors[id] = updated
	s.bumpLocked(remote.KindVendors, id)
	return updated, status, nil
}

func (s *Store) DeleteVendor(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.vendors[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, vendor.ErrVendorNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindVendors, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindVendors, id)
	})

	s.mu.Lock()
	delete(s.vendors, id)
	s.bumpLocked(remote.KindVendors, id)
	s.mu.Unlock()
	return status, nil
}

// ========== HOLIDAYS ==========

func (s *Store) AddHoliday(ctx context.Context, h holiday.Entry) (holiday.Entry, RemoteStatus) {
	now := time.Now()
	h.ID = newLocalID()
	h.CreatedAt, h.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindHolidays, h.ID, h)
	h.ID = id

	s.mu.Lock()
	s.holidays[h.ID] = h
	s.bumpLocked(remote.KindHolidays, h.ID)
	s.mu.Unlock()
	return h, status
}

func (s *Store) UpdateHoliday(ctx context.Context, id string, patch func(holiday.Entry) holiday.Entry) (holiday.Entry, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.holidays[id]
	base := s.revs[revKey{remote.KindHolidays, id}]
	s.mu.RUnlock()
	if !ok {
		return holiday.Entry{}, RemoteFailed, holiday.ErrHolidayNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindHolidays, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindHolidays, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindHolidays, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "holidays", "id", id)
		return holiday.Entry{}, status, ErrConflict
	}
	s.holidays[id] = updated
	s.bumpLocked(remote.KindHolidays, id)
	return updated, status, nil
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.holidays[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, holiday.ErrHolidayNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindHolidays, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindHolidays, id)
	})

	s.mu.Lock()
	delete(s.holidays, id)
	s.bumpLocked(remote.KindHolidays, id)
	s.mu.Unlock()
	return status, nil
}

// ========== ATTENDANCE ==========

// AddAttendance commits a record whose duration, holiday flag and wage
// were already computed by the attendance service. The stored wage is the
// snapshot used by cost allocation from here on.
func (s *Store) AddAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, RemoteStatus) {
	now := time.Now()
	rec.ID = newLocalID()
	rec.CreatedAt, rec.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindAttendance, rec.ID, rec)
	rec.ID = id

	s.mu.Lock()
	s.attendances[rec.ID] = rec
	s.bumpLocked(remote.KindAttendance, rec.ID)
	s.mu.Unlock()
	return rec, status
}

// UpdateAttendance replaces a record wholesale with a freshly computed
// one, keeping only identity and creation time.
func (s *Store) UpdateAttendance(ctx context.Context, id string, rec attendance.Record) (attendance.Record, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.attendances[id]
	base := s.revs[revKey{remote.KindAttendance, id}]
	s.mu.RUnlock()
	if !ok {
		return attendance.Record{}, RemoteFailed, attendance.ErrAttendanceNotFound
	}

	rec.ID = id
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindAttendance, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindAttendance, id, rec)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindAttendance, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "attendance", "id", id)
		return attendance.Record{}, status, ErrConflict
	}
	s.attendances[id] = rec
	s.bumpLocked(remote.KindAttendance, id)
	return rec, status, nil
}

func (s *Store) DeleteAttendance(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.attendances[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, attendance.ErrAttendanceNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindAttendance, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindAttendance, id)
	})

	s.mu.Lock()
	delete(s.attendances, id)
	s.bumpLocked(remote.KindAttendance, id)
	s.mu.Unlock()
	return status, nil
}

// ========== PURCHASES ==========

// AddPurchase commits an invoice. A purchase created already paid debits
// the cash ledger immediately; an unpaid one becomes tracked debt.
func (s *Store) AddPurchase(ctx context.Context, rec purchase.Record) (purchase.Record, RemoteStatus) {
	now := time.Now()
	rec.ID = newLocalID()
	rec.CreatedAt, rec.UpdatedAt = now, now
	if rec.Status == purchase.StatusPaid && rec.PaidDate == "" {
		rec.PaidDate = now.Format("2006-01-02")
	}

	id, status := s.attemptCreate(ctx, remote.KindPurchases, rec.ID, rec)
	rec.ID = id

	s.mu.Lock()
	s.purchases[rec.ID] = rec
	if rec.Status == purchase.StatusPaid {
		s.entries = append(s.entries, ledger.Entry{
			ID:     newLocalID(),
			At:     now,
			Amount: rec.Total.Neg(),
			Cause:  ledger.CausePurchase,
			RefID:  rec.ID,
		})
	}
	s.bumpLocked(remote.KindPurchases, rec.ID)
	s.mu.Unlock()
	return rec, status
}

// UpdatePurchase edits an unpaid invoice. Settled invoices are immutable;
// the only transition to paid is PayDebt (or creation as paid).
func (s *Store) UpdatePurchase(ctx context.Context, id string, patch func(purchase.Record) purchase.Record) (purchase.Record, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.purchases[id]
	base := s.revs[revKey{remote.KindPurchases, id}]
	s.mu.RUnlock()
	if !ok {
		return purchase.Record{}, RemoteFailed, purchase.ErrPurchaseNotFound
	}
	if current.Status == purchase.StatusPaid {
		return purchase.Record{}, RemoteFailed, purchase.ErrAlreadyPaid
	}

	updated := patch(current)
	updated.ID = id
	updated.Status = purchase.StatusUnpaid
	updated.PaidDate = ""
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindPurchases, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindPurchases, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindPurchases, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "purchases", "id", id)
		return purchase.Record{}, status, ErrConflict
	}
	s.purchases[id] = updated
	s.bumpLocked(remote.KindPurchases, id)
	return updated, status, nil
}

// DeletePurchase removes an invoice. Deleting a paid one appends a
// reversing ledger entry so the balance matches what a full reload would
// recompute.
func (s *Store) DeletePurchase(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.purchases[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, purchase.ErrPurchaseNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindPurchases, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindPurchases, id)
	})

	s.mu.Lock()
	delete(s.purchases, id)
	if current.Status == purchase.StatusPaid {
		s.entries = append(s.entries, ledger.Entry{
			ID:     newLocalID(),
			At:     time.Now(),
			Amount: current.Total,
			Cause:  ledger.CausePurchase,
			RefID:  id,
			Note:   "purchase deleted",
		})
	}
	s.bumpLocked(remote.KindPurchases, id)
	s.mu.Unlock()
	return status, nil
}

// PayDebt settles an unpaid purchase: the record is marked paid with
// today's date and the amount is debited from the cash ledger. The debit
// happens regardless of the remote outcome.
func (s *Store) PayDebt(ctx context.Context, id string, amount decimal.Decimal) (purchase.Record, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.purchases[id]
	base := s.revs[revKey{remote.KindPurchases, id}]
	s.mu.RUnlock()
	if !ok {
		return purchase.Record{}, RemoteFailed, purchase.ErrPurchaseNotFound
	}
	if current.Status == purchase.StatusPaid {
		return purchase.Record{}, RemoteFailed, purchase.ErrAlreadyPaid
	}

	now := time.Now()
	updated := current
	updated.Status = purchase.StatusPaid
	updated.PaidDate = now.Format("2006-01-02")
	updated.UpdatedAt = now

	status := s.attemptRemote(ctx, "update", remote.KindPurchases, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindPurchases, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindPurchases, id}] != base {
		s.logger.Warn("rejecting stale payment", "kind", "purchases", "id", id)
		return purchase.Record{}, status, ErrConflict
	}
	s.purchases[id] = updated
	s.entries = append(s.entries, ledger.Entry{
		ID:     newLocalID(),
		At:     now,
		Amount: amount.Neg(),
		Cause:  ledger.CausePayment,
		RefID:  id,
	})
	s.bumpLocked(remote.KindPurchases, id)
	return updated, status, nil
}

// ========== MASTER DATA ==========

func (s *Store) AddPayGrade(ctx context.Context, g grade.PayGrade) (grade.PayGrade, RemoteStatus) {
	now := time.Now()
	g.ID = newLocalID()
	g.CreatedAt, g.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindPayGrades, g.ID, g)
	g.ID = id

	s.mu.Lock()
	s.payGrades[g.ID] = g
	s.bumpLocked(remote.KindPayGrades, g.ID)
	s.mu.Unlock()
	return g, status
}

func (s *Store) UpdatePayGrade(ctx context.Context, id string, patch func(grade.PayGrade) grade.PayGrade) (grade.PayGrade, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.payGrades[id]
	base := s.revs[revKey{remote.KindPayGrades, id}]
	s.mu.RUnlock()
	if !ok {
		return grade.PayGrade{}, RemoteFailed, grade.ErrPayGradeNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindPayGrades, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindPayGrades, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindPayGrades, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "pay_grades", "id", id)
		return grade.PayGrade{}, status, ErrConflict
	}
	s.payGrades[id] = updated
	s.bumpLocked(remote.KindPayGrades, id)
	return updated, status, nil
}

func (s *Store) DeletePayGrade(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.payGrades[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, grade.ErrPayGradeNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindPayGrades, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindPayGrades, id)
	})

	s.mu.Lock()
	delete(s.payGrades, id)
	s.bumpLocked(remote.KindPayGrades, id)
	s.mu.Unlock()
	return status, nil
}

func (s *Store) AddSchedule(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, RemoteStatus) {
	now := time.Now()
	ws.ID = newLocalID()
	ws.CreatedAt, ws.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindSchedules, ws.ID, ws)
	ws.ID = id

	s.mu.Lock()
	s.schedules[ws.ID] = ws
	s.bumpLocked(remote.KindSchedules, ws.ID)
	s.mu.Unlock()
	return ws, status
}

func (s *Store) UpdateSchedule(ctx context.Context, id string, patch func(schedule.WorkSchedule) schedule.WorkSchedule) (schedule.WorkSchedule, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.schedules[id]
	base := s.revs[revKey{remote.KindSchedules, id}]
	s.mu.RUnlock()
	if !ok {
		return schedule.WorkSchedule{}, RemoteFailed, schedule.ErrScheduleNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindSchedules, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindSchedules, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindSchedules, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "schedules", "id", id)
		return schedule.WorkSchedule{}, status, ErrConflict
	}
	s.schedules[id] = updated
	s.bumpLocked(remote.KindSchedules, id)
	return updated, status, nil
}

func (s *Store) DeleteSchedule(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.schedules[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, schedule.ErrScheduleNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindSchedules, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindSchedules, id)
	})

	s.mu.Lock()
	delete(s.schedules, id)
	s.bumpLocked(remote.KindSchedules, id)
	s.mu.Unlock()
	return status, nil
}

func (s *Store) AddPosition(ctx context.Context, p position.Position) (position.Position, RemoteStatus) {
	now := time.Now()
	p.ID = newLocalID()
	p.CreatedAt, p.UpdatedAt = now, now

	id, status := s.attemptCreate(ctx, remote.KindPositions, p.ID, p)
	p.ID = id

	s.mu.Lock()
	s.positions[p.ID] = p
	s.bumpLocked(remote.KindPositions, p.ID)
	s.mu.Unlock()
	return p, status
}

func (s *Store) UpdatePosition(ctx context.Context, id string, patch func(position.Position) position.Position) (position.Position, RemoteStatus, error) {
	s.mu.RLock()
	current, ok := s.positions[id]
	base := s.revs[revKey{remote.KindPositions, id}]
	s.mu.RUnlock()
	if !ok {
		return position.Position{}, RemoteFailed, position.ErrPositionNotFound
	}

	updated := patch(current)
	updated.ID = id
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	status := s.attemptRemote(ctx, "update", remote.KindPositions, id, func(ctx context.Context) error {
		return s.remote.Update(ctx, remote.KindPositions, id, updated)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revs[revKey{remote.KindPositions, id}] != base {
		s.logger.Warn("rejecting stale update", "kind", "positions", "id", id)
		return position.Position{}, status, ErrConflict
	}
	s.positions[id] = updated
	s.bumpLocked(remote.KindPositions, id)
	return updated, status, nil
}

func (s *Store) DeletePosition(ctx context.Context, id string) (RemoteStatus, error) {
	s.mu.RLock()
	_, ok := s.positions[id]
	s.mu.RUnlock()
	if !ok {
		return RemoteFailed, position.ErrPositionNotFound
	}

	status := s.attemptRemote(ctx, "delete", remote.KindPositions, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, remote.KindPositions, id)
	})

	s.mu.Lock()
	delete(s.positions, id)
	s.bumpLocked(remote.KindPositions, id)
	s.mu.Unlock()
	return status, nil
}
