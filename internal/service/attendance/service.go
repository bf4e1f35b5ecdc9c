package attendance

import (
	"context"
	"time"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/attendance"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/payroll"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

// Service is the attendance-entry workflow: it turns a validated request
// into a finished record (durations, holiday flag, snapshotted wage)
// before handing it to the optimistic store.
type Service struct {
	store    *store.Store
	resolver HolidayResolver
}

func NewService(st *store.Store, resolver HolidayResolver) *Service {
	return &Service{store: st, resolver: resolver}
}

func (s *Service) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.Record, store.RemoteStatus, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, store.RemoteFailed, err
	}

	rec, err := s.build(req)
	if err != nil {
		return attendance.Record{}, store.RemoteFailed, err
	}

	rec, status := s.store.AddAttendance(ctx, rec)
	return rec, status, nil
}

// Update recomputes the whole record from the request, exactly as on
// create; the previous snapshot is discarded.
func (s *Service) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Record, store.RemoteStatus, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, store.RemoteFailed, err
	}

	rec, err := s.build(req)
	if err != nil {
		return attendance.Record{}, store.RemoteFailed, err
	}

	return s.store.UpdateAttendance(ctx, id, rec)
}

func (s *Service) Delete(ctx context.Context, id string) (store.RemoteStatus, error) {
	return s.store.DeleteAttendance(ctx, id)
}

// build computes everything that is snapshotted at save time: session
// durations, the holiday flag for the selected date, and the wage from
// the worker's current rate profile.
func (s *Service) build(req attendance.CreateAttendanceRequest) (attendance.Record, error) {
	w, ok := s.store.Worker(req.WorkerID)
	if !ok {
		return attendance.Record{}, worker.ErrWorkerNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Record{}, err
	}

	sessions := make([]attendance.Session, 0, len(req.Sessions))
	totalHours := 0.0
	for _, in := range req.Sessions {
		if _, ok := s.store.Project(in.ProjectID); !ok {
			return attendance.Record{}, project.ErrProjectNotFound
		}

		hours, err := Duration(in.Start, in.End)
		if err != nil {
			return attendance.Record{}, err
		}

		sessions = append(sessions, attendance.Session{
			ProjectID: in.ProjectID,
			Start:     in.Start,
			End:       in.End,
			Duration:  hours,
		})
		totalHours += hours
	}

	isHoliday, reason := s.resolver.Resolve(date, s.store.Holidays())

	wage, err := payroll.CalculateWage(totalHours, w.Rates, isHoliday)
	if err != nil {
		return attendance.Record{}, err
	}

	return attendance.Record{
		Date:          req.Date,
		WorkerID:      req.WorkerID,
		Sessions:      sessions,
		TotalHours:    totalHours,
		IsHoliday:     isHoliday,
		HolidayReason: reason,
		Wage:          wage,
	}, nil
}
