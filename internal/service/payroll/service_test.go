package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/payroll"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type stubRemote struct {
	snapshot remote.Snapshot
}

func (s *stubRemote) FetchAll(ctx context.Context) (remote.Snapshot, error) { return s.snapshot, nil }
func (s *stubRemote) Create(ctx context.Context, kind remote.Kind, record any) (string, error) {
	return "", nil
}
func (s *stubRemote) Update(ctx context.Context, kind remote.Kind, id string, record any) error {
	return nil
}
func (s *stubRemote) Delete(ctx context.Context, kind remote.Kind, id string) error { return nil }

func recapStore(t *testing.T) *store.Store {
	t.Helper()

	snap := remote.Snapshot{
		Workers: []worker.Worker{
			{
				ID:   "w1",
				Name: "Budi",
				Rates: worker.RateProfile{
					Normal:   decimal.NewFromInt(20000),
					Overtime: decimal.NewFromInt(30000),
					Holiday:  decimal.NewFromInt(40000),
				},
			},
			{
				ID:   "w2",
				Name: "Agus",
				Rates: worker.RateProfile{
					Normal:   decimal.NewFromInt(15000),
					Overtime: decimal.NewFromInt(22500),
					Holiday:  decimal.NewFromInt(30000),
				},
			},
		},
		Attendance: []attendance.Record{
			// Stored wages are deliberately stale: half of what the current
			// rates produce, so the two policies disagree.
			{ID: "a1", Date: "2026-09-01", WorkerID: "w1", TotalHours: 8, Wage: decimal.NewFromInt(80000)},
			{ID: "a2", Date: "2026-09-02", WorkerID: "w1", TotalHours: 10, Wage: decimal.NewFromInt(110000)},
			{ID: "a3", Date: "2026-09-01", WorkerID: "w2", TotalHours: 8, IsHoliday: true, Wage: decimal.NewFromInt(120000)},
			// Outside the recap range.
			{ID: "a4", Date: "2026-08-31", WorkerID: "w1", TotalHours: 8, Wage: decimal.NewFromInt(160000)},
		},
	}

	st := store.New(&stubRemote{snapshot: snap}, nil, decimal.Zero)
	require.NoError(t, st.Load(context.Background()))
	return st
}

func TestRecapSnapshotPolicySumsStoredWages(t *testing.T) {
	svc := NewService(recapStore(t), payroll.PolicySnapshot)

	recap, err := svc.Recap("2026-09-01", "2026-09-30")
	require.NoError(t, err)

	require.Len(t, recap.Rows, 2)
	// Rows are sorted by worker name.
	assert.Equal(t, "Agus", recap.Rows[0].WorkerName)
	assert.Equal(t, "Budi", recap.Rows[1].WorkerName)

	budi := recap.Rows[1]
	assert.Equal(t, 2, budi.Days)
	assert.InDelta(t, 18, budi.TotalHours, 1e-9)
	assert.True(t, budi.TotalWage.Equal(decimal.NewFromInt(190000)), "got %s", budi.TotalWage)

	assert.True(t, recap.GrandTotal.Equal(decimal.NewFromInt(310000)), "got %s", recap.GrandTotal)
}

func TestRecapRederivePolicyUsesCurrentRates(t *testing.T) {
	svc := NewService(recapStore(t), payroll.PolicyRederive)

	recap, err := svc.Recap("2026-09-01", "2026-09-30")
	require.NoError(t, err)

	budi := recap.Rows[1]
	// 8h at 20000 plus 8h+2h overtime: 160000 + 220000.
	assert.True(t, budi.TotalWage.Equal(decimal.NewFromInt(380000)), "got %s", budi.TotalWage)

	agus := recap.Rows[0]
	// Holiday day rederived at the flat holiday rate.
	assert.True(t, agus.TotalWage.Equal(decimal.NewFromInt(240000)), "got %s", agus.TotalWage)
	assert.InDelta(t, 8, agus.HolidayHours, 1e-9)
}

func TestRecapExcludesDatesOutsideRange(t *testing.T) {
	svc := NewService(recapStore(t), payroll.PolicySnapshot)

	recap, err := svc.Recap("2026-09-02", "2026-09-02")
	require.NoError(t, err)

	require.Len(t, recap.Rows, 1)
	assert.Equal(t, "Budi", recap.Rows[0].WorkerName)
	assert.Equal(t, 1, recap.Rows[0].Days)
}

func TestRecapRejectsMalformedDates(t *testing.T) {
	svc := NewService(recapStore(t), payroll.PolicySnapshot)

	_, err := svc.Recap("01-09-2026", "2026-09-30")
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestNewServiceDefaultsToRederive(t *testing.T) {
	svc := NewService(recapStore(t), "")
	assert.Equal(t, payroll.PolicyRederive, svc.Policy())
}
