package store

import "context"

// Refresh re-fetches everything from the remote store and, if nothing
// changed locally while the fetch was in flight, replaces the mirror.
//
// The returned bool reports whether the reload was applied. A reload that
// raced with a local mutation (or with a newer reload) is discarded: the
// fetched snapshot predates the optimistic applies, and replacing state
// with it would silently "lose" them. The caller can simply refresh
// again.
//
// Starting a new Refresh cancels the previous in-flight one.
func (s *Store) Refresh(ctx context.Context) (bool, error) {
	s.reloadMu.Lock()
	if s.cancelReload != nil {
		s.cancelReload()
	}
	rctx, cancel := context.WithCancel(ctx)
	s.cancelReload = cancel
	s.reloadMu.Unlock()
	defer cancel()

	s.mu.RLock()
	start := s.gen
	s.mu.RUnlock()

	snap, err := s.remote.FetchAll(rctx)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != start {
		s.logger.Info("discarding stale reload", "requested_at_gen", start, "current_gen", s.gen)
		return false, nil
	}
	s.resetLocked(snap)
	return true, nil
}
