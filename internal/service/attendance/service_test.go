package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
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

func newTestService(t *testing.T) *Service {
	t.Helper()

	snap := remote.Snapshot{
		Workers: []worker.Worker{{
			ID:   "w1",
			Name: "Budi",
			Rates: worker.RateProfile{
				Normal:   decimal.NewFromInt(20000),
				Overtime: decimal.NewFromInt(30000),
				Holiday:  decimal.NewFromInt(40000),
			},
		}},
		Projects: []project.Project{
			{ID: "p1", Name: "Ruko Blok C", Status: project.StatusActive},
		},
		Holidays: []holiday.Entry{
			{ID: "h1", Date: "2026-08-17", Reason: "Hari Kemerdekaan"},
		},
	}

	st := store.New(&stubRemote{snapshot: snap}, nil, decimal.Zero)
	require.NoError(t, st.Load(context.Background()))

	return NewService(st, HolidayResolver{RestDays: []time.Weekday{time.Sunday}})
}

func TestCreateSnapshotsDurationsAndWage(t *testing.T) {
	svc := newTestService(t)

	rec, status, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-09-01", // Tuesday
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "08:00", End: "12:00"},
			{ProjectID: "p1", Start: "13:00", End: "15:00"},
		},
	})
	require.NoError(t, err)
	assert.True(t, status.Synced())

	assert.InDelta(t, 6, rec.TotalHours, 1e-9)
	assert.False(t, rec.IsHoliday)
	assert.True(t, rec.Wage.Equal(decimal.NewFromInt(120000)), "got %s", rec.Wage)

	require.Len(t, rec.Sessions, 2)
	assert.InDelta(t, 4, rec.Sessions[0].Duration, 1e-9)
	assert.InDelta(t, 2, rec.Sessions[1].Duration, 1e-9)
	assert.NotEmpty(t, rec.ID)
}

func TestCreateOnCalendarHolidayPaysHolidayRate(t *testing.T) {
	svc := newTestService(t)

	rec, _, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-08-17",
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "08:00", End: "16:00"},
		},
	})
	require.NoError(t, err)

	assert.True(t, rec.IsHoliday)
	assert.Equal(t, "Hari Kemerdekaan", rec.HolidayReason)
	// 8h at the flat holiday rate.
	assert.True(t, rec.Wage.Equal(decimal.NewFromInt(320000)), "got %s", rec.Wage)
}

func TestCreateOnRestDayUsesWeekendLabel(t *testing.T) {
	svc := newTestService(t)

	rec, _, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-08-16", // Sunday
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "08:00", End: "12:00"},
		},
	})
	require.NoError(t, err)

	assert.True(t, rec.IsHoliday)
	assert.Equal(t, WeekendReason, rec.HolidayReason)
}

func TestCreateUnknownWorker(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-09-01",
		WorkerID: "missing",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "08:00", End: "12:00"},
		},
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestCreateUnknownProject(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-09-01",
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "missing", Start: "08:00", End: "12:00"},
		},
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestCreateRejectsInvertedSession(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-09-01",
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "16:00", End: "08:00"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
}

func TestUpdateRecomputesEverything(t *testing.T) {
	svc := newTestService(t)

	created, _, err := svc.Create(context.Background(), domain.CreateAttendanceRequest{
		Date:     "2026-09-01",
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "08:00", End: "12:00"},
		},
	})
	require.NoError(t, err)

	updated, _, err := svc.Update(context.Background(), created.ID, domain.UpdateAttendanceRequest{
		Date:     "2026-09-01",
		WorkerID: "w1",
		Sessions: []domain.SessionInput{
			{ProjectID: "p1", Start: "07:00", End: "17:00"},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 10, updated.TotalHours, 1e-9)
	// 8h normal plus 2h overtime.
	assert.True(t, updated.Wage.Equal(decimal.NewFromInt(220000)), "got %s", updated.Wage)
	assert.Equal(t, created.ID, updated.ID)
}
