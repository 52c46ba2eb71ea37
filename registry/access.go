package registry

import (
	"context"

	"github.com/google/uuid"

	"github.com/kofasentinel/atlas/apperr"
	"github.com/kofasentinel/atlas/metrics"
	"github.com/kofasentinel/atlas/types"
)

// LogEntry records a profile entering the gate.  The decision ladder is
// fixed: unknown profile, then the blacklist (absolute, no override),
// then the single-active-entry rule.  Any Inside log for the profile
// blocks re-entry, even if the data somehow holds more than one.
func (r *Registry) LogEntry(ctx context.Context, profileID, purpose, associatedProfileID string) (types.AccessLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logEntry(ctx, profileID, purpose, associatedProfileID)
}

func (r *Registry) logEntry(ctx context.Context, profileID, purpose, associatedProfileID string) (types.AccessLog, error) {
	p, ok, err := r.store.GetProfile(ctx, profileID)
	if err != nil {
		return types.AccessLog{}, apperr.Wrap(apperr.CodeStorage, err, "loading profile")
	}
	if !ok {
		r.metrics.EntriesDenied.WithLabelValues(metrics.ReasonUnknown).Inc()
		return types.AccessLog{}, apperr.New(apperr.CodeNotFound, "profile not found")
	}

	if p.Blacklisted {
		r.metrics.EntriesDenied.WithLabelValues(metrics.ReasonBlacklisted).Inc()
		r.log.Warn().
			Str("profile_id", profileID).
			Str("name", p.Name).
			Msg("entry denied: blacklisted")
		return types.AccessLog{}, apperr.New(apperr.CodeAccessDenied, "profile is blacklisted")
	}

	logs, err := r.store.ListAccessLogs(ctx)
	if err != nil {
		return types.AccessLog{}, apperr.Wrap(apperr.CodeStorage, err, "loading access logs")
	}
	for _, l := range logs {
		if l.ProfileID == profileID && l.Status == types.StatusInside {
			r.metrics.EntriesDenied.WithLabelValues(metrics.ReasonAlreadyInside).Inc()
			return types.AccessLog{}, apperr.New(apperr.CodeAlreadyInside, "profile is already inside")
		}
	}

	entry := types.AccessLog{
		LogID:               uuid.NewString(),
		ProfileID:           profileID,
		EntryTime:           r.clock.Now(),
		Status:              types.StatusInside,
		AssociatedProfileID: associatedProfileID,
		Purpose:             purpose,
	}
	if err := r.store.InsertAccessLog(ctx, entry); err != nil {
		return types.AccessLog{}, apperr.Wrap(apperr.CodeStorage, err, "saving access log")
	}

	r.metrics.EntriesGranted.Inc()
	r.log.Info().
		Str("log_id", entry.LogID).
		Str("profile_id", profileID).
		Str("name", p.Name).
		Msg("entry logged")
	return entry, nil
}

// LogExit closes an open access log.  The transition is one-way: a
// second exit on the same log is rejected and the recorded exit time
// never changes.
func (r *Registry) LogExit(ctx context.Context, logID string) (types.AccessLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok, err := r.store.GetAccessLog(ctx, logID)
	if err != nil {
		return types.AccessLog{}, apperr.Wrap(apperr.CodeStorage, err, "loading access log")
	}
	if !ok {
		return types.AccessLog{}, apperr.New(apperr.CodeNotFound, "access log not found")
	}
	if l.Status == types.StatusExited {
		return types.AccessLog{}, apperr.New(apperr.CodeAlreadyExited, "exit already logged")
	}

	now := r.clock.Now()
	l.ExitTime = &now
	l.Status = types.StatusExited

	if err := r.store.UpdateAccessLog(ctx, l); err != nil {
		return types.AccessLog{}, apperr.Wrap(apperr.CodeStorage, err, "saving access log")
	}

	r.metrics.ExitsLogged.Inc()
	r.log.Info().
		Str("log_id", l.LogID).
		Str("profile_id", l.ProfileID).
		Msg("exit logged")
	return l, nil
}

// RecordAccessLog appends a log directly, filling in any zero-valued
// identity, time, or status fields.  It skips the entry checks; it
// exists for flows that already made the decision.
func (r *Registry) RecordAccessLog(ctx context.Context, l types.AccessLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.LogID == "" {
		l.LogID = uuid.NewString()
	}
	if l.EntryTime.IsZero() {
		l.EntryTime = r.clock.Now()
	}
	if l.Status == "" {
		l.Status = types.StatusInside
	}

	if err := r.store.InsertAccessLog(ctx, l); err != nil {
		return apperr.Wrap(apperr.CodeStorage, err, "saving access log")
	}
	return nil
}

// ClearAllAccessLogs wipes the whole log collection.  Unconditional and
// irreversible; meant for administrative resets.
func (r *Registry) ClearAllAccessLogs(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.DeleteAllAccessLogs(ctx); err != nil {
		return apperr.Wrap(apperr.CodeStorage, err, "clearing access logs")
	}
	r.log.Warn().Msg("all access logs cleared")
	return nil
}

// RegisterAndEnter is the guard-desk shortcut: create the profile and
// log its first entry in one serialized step.  If the entry is refused
// (e.g. the form passed but the gate rules say no) the profile still
// exists, mirroring two separate calls.
func (r *Registry) RegisterAndEnter(ctx context.Context, form types.CreateProfileForm, purpose string) (types.Profile, types.AccessLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.createProfile(ctx, form)
	if err != nil {
		return types.Profile{}, types.AccessLog{}, err
	}
	entry, err := r.logEntry(ctx, p.ProfileID, purpose, "")
	if err != nil {
		return p, types.AccessLog{}, err
	}
	return p, entry, nil
}
