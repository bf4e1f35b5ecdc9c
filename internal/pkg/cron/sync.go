package cron

import (
	"context"
	"time"

	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

// SyncJobs keeps the local state converging toward the remote store in
// the background. A reload that races a local mutation is discarded by
// the store itself, so the job is safe to run at any interval.
type SyncJobs struct {
	store    *store.Store
	interval time.Duration
}

func NewSyncJobs(st *store.Store, interval time.Duration) *SyncJobs {
	return &SyncJobs{store: st, interval: interval}
}

func (j *SyncJobs) RegisterJobs(scheduler *Scheduler) {
	if j.interval <= 0 {
		return
	}
	scheduler.AddJob("refresh_remote_snapshot", j.interval, j.RefreshSnapshot)
}

func (j *SyncJobs) RefreshSnapshot(ctx context.Context) error {
	_, err := j.store.Refresh(ctx)
	return err
}
