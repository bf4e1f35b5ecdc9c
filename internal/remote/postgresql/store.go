// Package postgresql is the remote.Store implementation for self-hosted
// deployments: one JSONB document table keyed by (kind, id), mirroring the
// sheet layout of one tab per collection.
package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/database"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
	"golang.org/x/sync/errgroup"
)

type Store struct {
	db *database.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the document table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS remote_records (
			kind       TEXT        NOT NULL,
			id         TEXT        NOT NULL,
			data       JSONB       NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (kind, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure remote_records schema: %w", err)
	}
	return nil
}

// FetchAll implements remote.Store. Collections are loaded in parallel,
// one query per kind.
func (s *Store) FetchAll(ctx context.Context) (remote.Snapshot, error) {
	var snap remote.Snapshot

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindProjects, &snap.Projects) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindWorkers, &snap.Workers) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindVendors, &snap.Vendors) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindAttendance, &snap.Attendance) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindPurchases, &snap.Purchases) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindHolidays, &snap.Holidays) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindPayGrades, &snap.PayGrades) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindSchedules, &snap.Schedules) })
	g.Go(func() error { return fetchKind(gCtx, s.db, remote.KindPositions, &snap.Positions) })

	if err := g.Wait(); err != nil {
		return remote.Snapshot{}, &remote.Error{Op: "fetchAll", Err: err}
	}
	return snap, nil
}

func fetchKind[T any](ctx context.Context, db *database.DB, kind remote.Kind, out *[]T) error {
	rows, err := db.Query(ctx, `SELECT data FROM remote_records WHERE kind = $1 ORDER BY updated_at`, string(kind))
	if err != nil {
		return fmt.Errorf("query %s: %w", kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("scan %s: %w", kind, err)
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decode %s record: %w", kind, err)
		}
		*out = append(*out, rec)
	}
	return rows.Err()
}

// Create implements remote.Store. The client-supplied id is honored when
// present; otherwise one is assigned here.
func (s *Store) Create(ctx context.Context, kind remote.Kind, record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", &remote.Error{Op: "create", Kind: kind, Err: err}
	}

	id := recordID(data)
	if id == "" {
		v7, err := uuid.NewV7()
		if err != nil {
			return "", &remote.Error{Op: "create", Kind: kind, Err: err}
		}
		id = v7.String()
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO remote_records (kind, id, data)
		VALUES ($1, $2, jsonb_set($3::jsonb, '{id}', to_jsonb($2::text)))
		ON CONFLICT (kind, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, string(kind), id, string(data))
	if err != nil {
		return "", &remote.Error{Op: "create", Kind: kind, Err: err}
	}
	return id, nil
}

// Update implements remote.Store.
func (s *Store) Update(ctx context.Context, kind remote.Kind, id string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return &remote.Error{Op: "update", Kind: kind, Err: err}
	}

	tag, err := s.db.Exec(ctx, `
		UPDATE remote_records SET data = $3, updated_at = NOW()
		WHERE kind = $1 AND id = $2
	`, string(kind), id, string(data))
	if err != nil {
		return &remote.Error{Op: "update", Kind: kind, Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &remote.Error{Op: "update", Kind: kind, Err: fmt.Errorf("record %s not found", id)}
	}
	return nil
}

// Delete implements remote.Store. Deleting a missing record is not an
// error; the optimistic mirror may be ahead of the remote.
func (s *Store) Delete(ctx context.Context, kind remote.Kind, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM remote_records WHERE kind = $1 AND id = $2`, string(kind), id)
	if err != nil {
		return &remote.Error{Op: "delete", Kind: kind, Err: err}
	}
	return nil
}

func recordID(data []byte) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	return probe.ID
}
