// Package memory is the in-memory Store used by tests and dev runs.
// Slices keep insertion order; every accessor copies out so callers
// never alias internal state.
package memory

import (
	"context"
	"sync"

	"github.com/kofasentinel/atlas/store"
	"github.com/kofasentinel/atlas/types"
)

type Store struct {
	mu       sync.RWMutex
	profiles []types.Profile
	logs     []types.AccessLog
	events   []types.BlacklistEvent
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) ListProfiles(_ context.Context) ([]types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}

func (s *Store) GetProfile(_ context.Context, profileID string) (types.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.ProfileID == profileID {
			return p, true, nil
		}
	}
	return types.Profile{}, false, nil
}

func (s *Store) InsertProfile(_ context.Context, p types.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, p)
	return nil
}

func (s *Store) UpdateProfile(_ context.Context, p types.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profiles {
		if s.profiles[i].ProfileID == p.ProfileID {
			s.profiles[i] = p
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteProfile(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.profiles[:0]
	for _, p := range s.profiles {
		if p.ProfileID != profileID {
			kept = append(kept, p)
		}
	}
	s.profiles = kept

	// Cascade: the profile's logs go with it.
	keptLogs := s.logs[:0]
	for _, l := range s.logs {
		if l.ProfileID != profileID {
			keptLogs = append(keptLogs, l)
		}
	}
	s.logs = keptLogs
	return nil
}

func (s *Store) ListAccessLogs(_ context.Context) ([]types.AccessLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.AccessLog, len(s.logs))
	copy(out, s.logs)
	return out, nil
}

func (s *Store) GetAccessLog(_ context.Context, logID string) (types.AccessLog, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.logs {
		if l.LogID == logID {
			return l, true, nil
		}
	}
	return types.AccessLog{}, false, nil
}

func (s *Store) InsertAccessLog(_ context.Context, l types.AccessLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, l)
	return nil
}

func (s *Store) UpdateAccessLog(_ context.Context, l types.AccessLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.logs {
		if s.logs[i].LogID == l.LogID {
			s.logs[i] = l
			return nil
		}
	}
	return nil
}

func (s *Store) DeleteAllAccessLogs(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = nil
	return nil
}

func (s *Store) InsertBlacklistEvent(_ context.Context, ev types.BlacklistEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *Store) ListBlacklistEvents(_ context.Context, profileID string) ([]types.BlacklistEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.BlacklistEvent
	for _, ev := range s.events {
		if ev.ProfileID == profileID {
			out = append(out, ev)
		}
	}
	return out, nil
}
