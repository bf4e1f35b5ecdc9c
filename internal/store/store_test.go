package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/ledger"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
)

var errRemoteDown = &remote.Error{Op: "update", Err: errors.New("connection refused")}

// fakeRemote is an in-test backend with switchable failure modes and
// hooks to interleave mutations with in-flight calls.
type fakeRemote struct {
	snapshot   remote.Snapshot
	fail       bool
	createID   string
	fetchHook  func()
	updateHook func()
}

func (f *fakeRemote) FetchAll(ctx context.Context) (remote.Snapshot, error) {
	if f.fetchHook != nil {
		f.fetchHook()
	}
	if f.fail {
		return remote.Snapshot{}, errRemoteDown
	}
	return f.snapshot, nil
}

func (f *fakeRemote) Create(ctx context.Context, kind remote.Kind, record any) (string, error) {
	if f.fail {
		return "", errRemoteDown
	}
	return f.createID, nil
}

func (f *fakeRemote) Update(ctx context.Context, kind remote.Kind, id string, record any) error {
	if f.updateHook != nil {
		f.updateHook()
	}
	if f.fail {
		return errRemoteDown
	}
	return nil
}

func (f *fakeRemote) Delete(ctx context.Context, kind remote.Kind, id string) error {
	if f.fail {
		return errRemoteDown
	}
	return nil
}

func newTestStore(t *testing.T, fake *fakeRemote, balance decimal.Decimal) *Store {
	t.Helper()
	s := New(fake, nil, balance)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func testWorker(name string) worker.Worker {
	return worker.Worker{
		Name:           name,
		SkillTier:      "tukang",
		EmploymentType: "daily",
		Status:         worker.StatusActive,
		Rates: worker.RateProfile{
			Normal:   decimal.NewFromInt(20000),
			Overtime: decimal.NewFromInt(30000),
			Holiday:  decimal.NewFromInt(40000),
		},
	}
}

func TestAddWorkerKeepsLocalOnRemoteFailure(t *testing.T) {
	fake := &fakeRemote{}
	s := newTestStore(t, fake, decimal.Zero)
	fake.fail = true

	created, status := s.AddWorker(context.Background(), testWorker("Budi"))

	assert.Equal(t, RemoteFailed, status)
	assert.False(t, status.Synced())
	require.NotEmpty(t, created.ID)

	got, ok := s.Worker(created.ID)
	require.True(t, ok, "record must exist locally despite the remote failure")
	assert.Equal(t, "Budi", got.Name)
}

func TestAddWorkerAdoptsCanonicalRemoteID(t *testing.T) {
	fake := &fakeRemote{createID: "remote-42"}
	s := newTestStore(t, fake, decimal.Zero)

	created, status := s.AddWorker(context.Background(), testWorker("Siti"))

	assert.Equal(t, RemoteOK, status)
	assert.Equal(t, "remote-42", created.ID)

	_, ok := s.Worker("remote-42")
	assert.True(t, ok)
}

func TestUpdateWorkerRejectsStaleApply(t *testing.T) {
	fake := &fakeRemote{}
	s := newTestStore(t, fake, decimal.Zero)

	created, _ := s.AddWorker(context.Background(), testWorker("Budi"))

	// While the first update's remote call is in flight, a second update
	// lands. The first apply is then stale and must be rejected.
	interleaved := false
	fake.updateHook = func() {
		if interleaved {
			return
		}
		interleaved = true
		_, _, err := s.UpdateWorker(context.Background(), created.ID, func(w worker.Worker) worker.Worker {
			w.Name = "Budi (winner)"
			return w
		})
		require.NoError(t, err)
	}

	_, _, err := s.UpdateWorker(context.Background(), created.ID, func(w worker.Worker) worker.Worker {
		w.Name = "Budi (loser)"
		return w
	})
	assert.ErrorIs(t, err, ErrConflict)

	got, ok := s.Worker(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Budi (winner)", got.Name)
}

func TestRefreshAppliesSnapshot(t *testing.T) {
	fake := &fakeRemote{}
	s := newTestStore(t, fake, decimal.Zero)

	fake.snapshot = remote.Snapshot{
		Workers: []worker.Worker{{ID: "w1", Name: "Agus"}},
	}

	applied, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)

	_, ok := s.Worker("w1")
	assert.True(t, ok)
}

func TestRefreshDiscardsStaleReload(t *testing.T) {
	fake := &fakeRemote{
		snapshot: remote.Snapshot{
			Workers: []worker.Worker{{ID: "w1", Name: "Agus"}},
		},
	}
	s := newTestStore(t, fake, decimal.Zero)

	// A mutation lands while the fetch is in flight; applying the fetched
	// snapshot would silently roll it back.
	var localID string
	fake.fetchHook = func() {
		created, _ := s.AddWorker(context.Background(), testWorker("Baru"))
		localID = created.ID
		fake.fetchHook = nil
	}

	applied, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, applied, "reload racing a local mutation must be discarded")

	_, ok := s.Worker(localID)
	assert.True(t, ok, "the racing local mutation must survive")
}

func TestPayDebtDebitsLedgerDespiteRemoteFailure(t *testing.T) {
	fake := &fakeRemote{
		snapshot: remote.Snapshot{
			Purchases: []purchase.Record{{
				ID:       "p1",
				Total:    decimal.NewFromInt(1000),
				Status:   purchase.StatusUnpaid,
				DueDate:  "2026-09-10",
				VendorID: "v1",
			}},
		},
	}
	s := newTestStore(t, fake, decimal.NewFromInt(5000))
	fake.fail = true

	paid, status, err := s.PayDebt(context.Background(), "p1", decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, RemoteFailed, status)
	assert.Equal(t, purchase.StatusPaid, paid.Status)
	assert.NotEmpty(t, paid.PaidDate)

	assert.True(t, s.CashBalance().Equal(decimal.NewFromInt(4000)))

	entries := s.LedgerEntries()
	last := entries[len(entries)-1]
	assert.Equal(t, ledger.CausePayment, last.Cause)
	assert.Equal(t, "p1", last.RefID)
	assert.True(t, last.Amount.Equal(decimal.NewFromInt(-1000)))
}

func TestPayDebtTwiceIsRejected(t *testing.T) {
	fake := &fakeRemote{
		snapshot: remote.Snapshot{
			Purchases: []purchase.Record{{
				ID:      "p1",
				Total:   decimal.NewFromInt(500),
				Status:  purchase.StatusUnpaid,
				DueDate: "2026-09-10",
			}},
		},
	}
	s := newTestStore(t, fake, decimal.NewFromInt(1000))

	_, _, err := s.PayDebt(context.Background(), "p1", decimal.NewFromInt(500))
	require.NoError(t, err)

	_, _, err = s.PayDebt(context.Background(), "p1", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, purchase.ErrAlreadyPaid)

	assert.True(t, s.CashBalance().Equal(decimal.NewFromInt(500)))
}

func TestUpdatePaidPurchaseIsImmutable(t *testing.T) {
	fake := &fakeRemote{
		snapshot: remote.Snapshot{
			Purchases: []purchase.Record{{
				ID:       "p1",
				Total:    decimal.NewFromInt(500),
				Status:   purchase.StatusPaid,
				PaidDate: "2026-08-01",
			}},
		},
	}
	s := newTestStore(t, fake, decimal.NewFromInt(1000))

	_, _, err := s.UpdatePurchase(context.Background(), "p1", func(r purchase.Record) purchase.Record {
		r.Total = decimal.NewFromInt(900)
		return r
	})
	assert.ErrorIs(t, err, purchase.ErrAlreadyPaid)
}

func TestDeletePaidPurchaseReversesLedger(t *testing.T) {
	fake := &fakeRemote{
		snapshot: remote.Snapshot{
			Purchases: []purchase.Record{{
				ID:       "p1",
				Total:    decimal.NewFromInt(750),
				Status:   purchase.StatusPaid,
				PaidDate: "2026-08-01",
			}},
		},
	}
	s := newTestStore(t, fake, decimal.NewFromInt(1000))
	require.True(t, s.CashBalance().Equal(decimal.NewFromInt(250)))

	_, err := s.DeletePurchase(context.Background(), "p1")
	require.NoError(t, err)

	assert.True(t, s.CashBalance().Equal(decimal.NewFromInt(1000)),
		"the balance must match what a full reload would recompute")
}

func TestAddPurchaseCreatedPaidDebitsImmediately(t *testing.T) {
	fake := &fakeRemote{}
	s := newTestStore(t, fake, decimal.NewFromInt(2000))

	rec := purchase.Record{
		InvoiceNo: "INV-1",
		Date:      "2026-09-01",
		VendorID:  "v1",
		Total:     decimal.NewFromInt(300),
		Status:    purchase.StatusPaid,
	}
	created, status := s.AddPurchase(context.Background(), rec)

	assert.Equal(t, RemoteOK, status)
	assert.NotEmpty(t, created.PaidDate)
	assert.True(t, s.CashBalance().Equal(decimal.NewFromInt(1700)))
}

func TestLoadRebuildsLedgerFromPaidPurchases(t *testing.T) {
	fake := &fakeRemote{
		snapshot: remote.Snapshot{
			Purchases: []purchase.Record{
				{ID: "p1", Total: decimal.NewFromInt(100), Status: purchase.StatusPaid, PaidDate: "2026-08-01"},
				{ID: "p2", Total: decimal.NewFromInt(200), Status: purchase.StatusUnpaid, DueDate: "2026-09-15"},
			},
		},
	}
	s := newTestStore(t, fake, decimal.NewFromInt(1000))

	assert.True(t, s.CashBalance().Equal(decimal.NewFromInt(900)))
	assert.True(t, s.TotalUnpaidDebt().Equal(decimal.NewFromInt(200)))
}
