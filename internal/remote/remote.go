// Package remote defines the contract with the remote record store the
// dashboard mirrors. The store is opaque: a hosted spreadsheet API in
// production, PostgreSQL for self-hosted deployments, or a fake in tests.
// Remote failures are advisory; the in-memory mirror stays authoritative
// for the session.
package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/grade"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/master/position"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/schedule"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/vendor"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
)

// Kind names one remote collection.
type Kind string

const (
	KindProjects   Kind = "projects"
	KindWorkers    Kind = "workers"
	KindVendors    Kind = "vendors"
	KindAttendance Kind = "attendance"
	KindPurchases  Kind = "purchases"
	KindHolidays   Kind = "holidays"
	KindPayGrades  Kind = "pay_grades"
	KindSchedules  Kind = "schedules"
	KindPositions  Kind = "positions"
)

var Kinds = []Kind{
	KindProjects,
	KindWorkers,
	KindVendors,
	KindAttendance,
	KindPurchases,
	KindHolidays,
	KindPayGrades,
	KindSchedules,
	KindPositions,
}

// Snapshot is the result of one full fetch. Any collection may be empty.
type Snapshot struct {
	Projects   []project.Project       `json:"projects"`
	Workers    []worker.Worker         `json:"workers"`
	Vendors    []vendor.Vendor         `json:"vendors"`
	Attendance []attendance.Record     `json:"attendance"`
	Purchases  []purchase.Record       `json:"purchases"`
	Holidays   []holiday.Entry         `json:"holidays"`
	PayGrades  []grade.PayGrade        `json:"pay_grades"`
	Schedules  []schedule.WorkSchedule `json:"schedules"`
	Positions  []position.Position     `json:"positions"`
}

// Store is implemented by every remote backend.
type Store interface {
	// FetchAll loads every collection in one round trip.
	FetchAll(ctx context.Context) (Snapshot, error)

	// Create persists a record and returns the canonical id the remote
	// assigned. Backends that honor the client-supplied id return it
	// unchanged.
	Create(ctx context.Context, kind Kind, record any) (string, error)

	// Update replaces the record with the given id.
	Update(ctx context.Context, kind Kind, id string, record any) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, kind Kind, id string) error
}

// ErrNotConfigured means the remote store settings are missing or
// malformed. Fatal at startup; there is no demo-data fallback.
var ErrNotConfigured = errors.New("remote store is not configured")

// Error wraps a transport or application failure from the remote store.
// Never fatal after startup: callers log it and keep the local state.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("remote %s %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
