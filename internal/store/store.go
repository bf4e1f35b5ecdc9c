// Package store owns the in-memory mirror of every remote collection and
// wraps all mutations in the optimistic sync protocol: attempt the remote
// call, then apply the local state transition regardless of the remote
// outcome. Local state is authoritative for the session; remote failures
// are surfaced as a status the caller can toast on, never as a rollback.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
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

// RemoteStatus reports whether the remote echo of a mutation succeeded.
// The local record exists either way.
type RemoteStatus string

const (
	RemoteOK     RemoteStatus = "ok"
	RemoteFailed RemoteStatus = "failed"
)

// Synced is true when the mutation is known durable on the remote store.
func (s RemoteStatus) Synced() bool { return s == RemoteOK }

// ErrConflict is returned when an entity was modified by another mutation
// while this one's remote call was in flight. The stale apply is rejected
// instead of blindly overwriting the newer state.
var ErrConflict = errors.New("record changed while the mutation was in flight")

type revKey struct {
	kind remote.Kind
	id   string
}

type Store struct {
	remote         remote.Store
	logger         *slog.Logger
	initialBalance decimal.Decimal

	mu   sync.RWMutex
	gen  uint64 // bumped on every local apply; reloads observing a stale gen are discarded
	revs map[revKey]uint64

	workers     map[string]worker.Worker
	projects    map[string]project.Project
	vendors     map[string]vendor.Vendor
	attendances map[string]attendance.Record
	purchases   map[string]purchase.Record
	holidays    map[string]holiday.Entry
	payGrades   map[string]grade.PayGrade
	schedules   map[string]schedule.WorkSchedule
	positions   map[string]position.Position
	entries     []ledger.Entry

	reloadMu     sync.Mutex
	cancelReload context.CancelFunc
}

func New(r remote.Store, logger *slog.Logger, initialBalance decimal.Decimal) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		remote:         r,
		logger:         logger,
		initialBalance: initialBalance,
	}
	s.resetLocked(remote.Snapshot{})
	return s
}

// Load performs the initial full fetch. Unlike Refresh, a failure here is
// fatal: the dashboard never starts from demo data.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.remote.FetchAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.resetLocked(snap)
	s.mu.Unlock()
	return nil
}

// resetLocked replaces the whole mirror with a fetched snapshot and
// rebuilds the cash ledger from scratch: initial balance minus every paid
// purchase.
func (s *Store) resetLocked(snap remote.Snapshot) {
	s.revs = make(map[revKey]uint64)

	s.workers = make(map[string]worker.Worker, len(snap.Workers))
	for _, w := range snap.Workers {
		s.workers[w.ID] = w
	}
	s.projects = make(map[string]project.Project, len(snap.Projects))
	for _, p := range snap.Projects {
		s.projects[p.ID] = p
	}
	s.vendors = make(map[string]vendor.Vendor, len(snap.Vendors))
	for _, v := range snap.Vendors {
		s.vendors[v.ID] = v
	}
	s.attendances = make(map[string]attendance.Record, len(snap.Attendance))
	for _, a := range snap.Attendance {
		s.attendances[a.ID] = a
	}
	s.purchases = make(map[string]purchase.Record, len(snap.Purchases))
	for _, p := range snap.Purchases {
		s.purchases[p.ID] = p
	}
	s.holidays = make(map[string]holiday.Entry, len(snap.Holidays))
	for _, h := range snap.Holidays {
		s.holidays[h.ID] = h
	}
	s.payGrades = make(map[string]grade.PayGrade, len(snap.PayGrades))
	for _, g := range snap.PayGrades {
		s.payGrades[g.ID] = g
	}
	s.schedules = make(map[string]schedule.WorkSchedule, len(snap.Schedules))
	for _, ws := range snap.Schedules {
		s.schedules[ws.ID] = ws
	}
	s.positions = make(map[string]position.Position, len(snap.Positions))
	for _, pos := range snap.Positions {
		s.positions[pos.ID] = pos
	}

	s.entries = rebuildLedger(s.initialBalance, snap.Purchases)
	s.gen++
}

func rebuildLedger(initial decimal.Decimal, purchases []purchase.Record) []ledger.Entry {
	entries := []ledger.Entry{{
		ID:     newLocalID(),
		At:     time.Now(),
		Amount: initial,
		Cause:  ledger.CauseInitial,
	}}
	for _, p := range purchases {
		if p.Status != purchase.StatusPaid {
			continue
		}
		entries = append(entries, ledger.Entry{
			ID:     newLocalID(),
			At:     paidAt(p),
			Amount: p.Total.Neg(),
			Cause:  ledger.CausePurchase,
			RefID:  p.ID,
		})
	}
	return entries
}

func paidAt(p purchase.Record) time.Time {
	if t, err := time.Parse("2006-01-02", p.PaidDate); err == nil {
		return t
	}
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt
	}
	return time.Now()
}

// bumpLocked advances the entity revision and the store generation.
// Callers hold the write lock.
func (s *Store) bumpLocked(kind remote.Kind, id string) {
	s.revs[revKey{kind, id}]++
	s.gen++
}

func (s *Store) revision(kind remote.Kind, id string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revs[revKey{kind, id}]
}

// attemptRemote runs the remote half of a mutation. Failures are logged
// and reported, never propagated.
func (s *Store) attemptRemote(ctx context.Context, op string, kind remote.Kind, id string, call func(context.Context) error) RemoteStatus {
	if err := call(ctx); err != nil {
		s.logger.Warn("remote mutation failed, keeping optimistic local state",
			"op", op, "kind", string(kind), "id", id, "error", err)
		return RemoteFailed
	}
	return RemoteOK
}

// attemptCreate runs the remote create and reconciles the optimistic
// local id to the remote's canonical id before the record is committed
// locally, so readers never observe the transient id.
func (s *Store) attemptCreate(ctx context.Context, kind remote.Kind, localID string, record any) (string, RemoteStatus) {
	remoteID, err := s.remote.Create(ctx, kind, record)
	if err != nil {
		s.logger.Warn("remote create failed, keeping optimistic local state",
			"kind", string(kind), "id", localID, "error", err)
		return localID, RemoteFailed
	}
	if remoteID != "" {
		return remoteID, RemoteOK
	}
	return localID, RemoteOK
}

func newLocalID() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
