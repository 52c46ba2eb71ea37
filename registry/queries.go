package registry

import (
	"context"

	"github.com/kofasentinel/atlas/apperr"
	"github.com/kofasentinel/atlas/query"
	"github.com/kofasentinel/atlas/types"
)

// Read side.  Each method takes the same lock as the mutations (the
// register is a single logical actor), pulls a fresh snapshot, and
// hands it to the pure derivations in the query package.  Nothing is
// cached.

func (r *Registry) Profiles(ctx context.Context) ([]types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listProfiles(ctx)
}

func (r *Registry) AccessLogs(ctx context.Context) ([]types.AccessLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listAccessLogs(ctx)
}

func (r *Registry) SearchProfiles(ctx context.Context, q string) ([]types.ProfileSearchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.listProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return query.SearchProfiles(profiles, q), nil
}

func (r *Registry) AccessLogsWithProfiles(ctx context.Context) ([]types.AccessLogWithProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, logs, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return query.LogsWithProfiles(profiles, logs), nil
}

func (r *Registry) FilteredAccessLogs(ctx context.Context, f types.AccessLogFilters) ([]types.AccessLogWithProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, logs, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterLogs(query.LogsWithProfiles(profiles, logs), f), nil
}

func (r *Registry) ProfilesWithRecentLogs(ctx context.Context) ([]types.ProfileWithLogs, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, logs, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return query.ProfilesWithRecentLogs(profiles, logs), nil
}

func (r *Registry) DashboardStats(ctx context.Context) (types.DashboardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, logs, err := r.snapshot(ctx)
	if err != nil {
		return types.DashboardStats{}, err
	}
	return query.Stats(profiles, logs, r.clock.Now()), nil
}

func (r *Registry) ProfileTypeCounts(ctx context.Context) (types.ProfileTypeStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.listProfiles(ctx)
	if err != nil {
		return types.ProfileTypeStats{}, err
	}
	return query.ProfileTypeCounts(profiles), nil
}

func (r *Registry) BlacklistedProfiles(ctx context.Context) ([]types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles, err := r.listProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return query.BlacklistedProfiles(profiles), nil
}

// BlacklistHistory returns a profile's blacklist audit trail, oldest
// event first.
func (r *Registry) BlacklistHistory(ctx context.Context, profileID string) ([]types.BlacklistEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.store.ListBlacklistEvents(ctx, profileID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, err, "loading blacklist events")
	}
	return events, nil
}

func (r *Registry) TrafficReport(ctx context.Context, w query.Window) (query.TrafficReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logs, err := r.listAccessLogs(ctx)
	if err != nil {
		return query.TrafficReport{}, err
	}
	return query.BuildTrafficReport(logs, w, r.clock.Now()), nil
}

func (r *Registry) snapshot(ctx context.Context) ([]types.Profile, []types.AccessLog, error) {
	profiles, err := r.listProfiles(ctx)
	if err != nil {
		return nil, nil, err
	}
	logs, err := r.listAccessLogs(ctx)
	if err != nil {
		return nil, nil, err
	}
	return profiles, logs, nil
}

func (r *Registry) listProfiles(ctx context.Context) ([]types.Profile, error) {
	profiles, err := r.store.ListProfiles(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, err, "loading profiles")
	}
	return profiles, nil
}

func (r *Registry) listAccessLogs(ctx context.Context) ([]types.AccessLog, error) {
	logs, err := r.store.ListAccessLogs(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, err, "loading access logs")
	}
	return logs, nil
}
