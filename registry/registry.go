// Package registry is the access-control core: the single component
// allowed to mutate the Profile and AccessLog collections.  It runs the
// admission checks, drives the Inside/Exited state machine, enforces the
// blacklist, and answers every derived view.  One mutex serializes all
// operations end to end, persistence included, so callers never observe
// success before the state is durable.
package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kofasentinel/atlas/apperr"
	"github.com/kofasentinel/atlas/clock"
	"github.com/kofasentinel/atlas/metrics"
	"github.com/kofasentinel/atlas/store"
	"github.com/kofasentinel/atlas/types"
	"github.com/kofasentinel/atlas/validate"
)

type Deps struct {
	Store   store.Store
	Clock   clock.Clock      // defaults to the system clock
	Logger  *zerolog.Logger  // defaults to a no-op logger
	Metrics *metrics.Metrics // defaults to an isolated counter set
}

type Registry struct {
	mu      sync.Mutex
	store   store.Store
	clock   clock.Clock
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func New(d Deps) *Registry {
	if d.Clock == nil {
		d.Clock = clock.System()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New(nil)
	}
	log := zerolog.Nop()
	if d.Logger != nil {
		log = *d.Logger
	}
	return &Registry{
		store:   d.Store,
		clock:   d.Clock,
		log:     log,
		metrics: d.Metrics,
	}
}

// CreateProfile admits a new profile: form shape, identifier format,
// and identifier uniqueness are all checked before anything is written.
func (r *Registry) CreateProfile(ctx context.Context, form types.CreateProfileForm) (types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createProfile(ctx, form)
}

func (r *Registry) createProfile(ctx context.Context, form types.CreateProfileForm) (types.Profile, error) {
	if err := validate.CreateForm(form); err != nil {
		return types.Profile{}, err
	}

	existing, err := r.store.ListProfiles(ctx)
	if err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "loading profiles")
	}
	if err := validate.IdentifierUnique(form.Identifier, existing, ""); err != nil {
		return types.Profile{}, err
	}

	now := r.clock.Now()
	p := types.Profile{
		ProfileID:       uuid.NewString(),
		ProfileType:     form.ProfileType,
		Name:            form.Name,
		Identifier:      form.Identifier,
		Email:           form.Email,
		Company:         form.Company,
		DriverName:      form.DriverName,
		DriverPhone:     form.DriverPhone,
		PhotoURL:        form.PhotoURL,
		Notes:           form.Notes,
		LinkedProfileID: form.LinkedProfileID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := r.store.InsertProfile(ctx, p); err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "saving profile")
	}

	r.metrics.ProfilesCreated.Inc()
	r.log.Info().
		Str("profile_id", p.ProfileID).
		Str("profile_type", string(p.ProfileType)).
		Str("identifier", p.Identifier).
		Msg("profile created")
	return p, nil
}

// UpdateProfile merges the form's present fields into the stored
// profile.  A changed identifier is re-validated for format and
// uniqueness; the profile ID itself never changes.
func (r *Registry) UpdateProfile(ctx context.Context, form types.UpdateProfileForm) (types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok, err := r.store.GetProfile(ctx, form.ProfileID)
	if err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "loading profile")
	}
	if !ok {
		return types.Profile{}, apperr.New(apperr.CodeNotFound, "profile not found")
	}

	effectiveType := p.ProfileType
	if form.ProfileType != nil {
		effectiveType = *form.ProfileType
	}
	if err := validate.UpdateForm(form, effectiveType); err != nil {
		return types.Profile{}, err
	}

	if form.Identifier != nil && *form.Identifier != p.Identifier {
		existing, err := r.store.ListProfiles(ctx)
		if err != nil {
			return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "loading profiles")
		}
		if err := validate.IdentifierUnique(*form.Identifier, existing, p.ProfileID); err != nil {
			return types.Profile{}, err
		}
	}

	mergeProfile(&p, form)
	p.UpdatedAt = r.clock.Now()

	if err := r.store.UpdateProfile(ctx, p); err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "saving profile")
	}

	r.log.Info().Str("profile_id", p.ProfileID).Msg("profile updated")
	return p, nil
}

// DeleteProfile removes the profile and all of its access logs.
// Destructive and non-reversible.
func (r *Registry) DeleteProfile(ctx context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok, err := r.store.GetProfile(ctx, profileID)
	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, err, "loading profile")
	}
	if !ok {
		return apperr.New(apperr.CodeNotFound, "profile not found")
	}

	if err := r.store.DeleteProfile(ctx, profileID); err != nil {
		return apperr.Wrap(apperr.CodeStorage, err, "deleting profile")
	}

	r.metrics.ProfilesDeleted.Inc()
	r.log.Info().
		Str("profile_id", profileID).
		Str("name", p.Name).
		Msg("profile deleted")
	return nil
}

// ToggleBlacklist flips the restriction flag and appends a reasoned
// event to the profile's blacklist audit trail.
func (r *Registry) ToggleBlacklist(ctx context.Context, profileID, reason string) (types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok, err := r.store.GetProfile(ctx, profileID)
	if err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "loading profile")
	}
	if !ok {
		return types.Profile{}, apperr.New(apperr.CodeNotFound, "profile not found")
	}

	now := r.clock.Now()
	p.Blacklisted = !p.Blacklisted
	p.UpdatedAt = now

	if err := r.store.UpdateProfile(ctx, p); err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "saving profile")
	}
	if err := r.store.InsertBlacklistEvent(ctx, types.BlacklistEvent{
		EventID:     uuid.NewString(),
		ProfileID:   profileID,
		Blacklisted: p.Blacklisted,
		Reason:      reason,
		CreatedAt:   now,
	}); err != nil {
		return types.Profile{}, apperr.Wrap(apperr.CodeStorage, err, "saving blacklist event")
	}

	r.log.Info().
		Str("profile_id", profileID).
		Bool("blacklisted", p.Blacklisted).
		Str("reason", reason).
		Msg("blacklist toggled")
	return p, nil
}

func mergeProfile(p *types.Profile, form types.UpdateProfileForm) {
	if form.ProfileType != nil {
		p.ProfileType = *form.ProfileType
	}
	if form.Name != nil {
		p.Name = *form.Name
	}
	if form.Identifier != nil {
		p.Identifier = *form.Identifier
	}
	if form.Email != nil {
		p.Email = *form.Email
	}
	if form.Company != nil {
		p.Company = *form.Company
	}
	if form.DriverName != nil {
		p.DriverName = *form.DriverName
	}
	if form.DriverPhone != nil {
		p.DriverPhone = *form.DriverPhone
	}
	if form.PhotoURL != nil {
		p.PhotoURL = *form.PhotoURL
	}
	if form.Notes != nil {
		p.Notes = *form.Notes
	}
	if form.LinkedProfileID != nil {
		p.LinkedProfileID = *form.LinkedProfileID
	}
}
