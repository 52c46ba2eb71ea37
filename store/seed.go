package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kofasentinel/atlas/types"
)

// SampleProfiles returns the starter records a fresh register is seeded
// with so the guard interface has something to search against on first
// run.
func SampleProfiles(now time.Time) []types.Profile {
	return []types.Profile{
		{
			ProfileID:   uuid.NewString(),
			ProfileType: types.ProfileTypeIndividual,
			Name:        "John Doe",
			Identifier:  "08123456789",
			Notes:       "Regular visitor",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ProfileID:   uuid.NewString(),
			ProfileType: types.ProfileTypeVehicle,
			Name:        "Toyota Camry",
			Identifier:  "ABC-123",
			Notes:       "Staff vehicle",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ProfileID:   uuid.NewString(),
			ProfileType: types.ProfileTypeVehicle,
			Name:        "Honda Accord",
			Identifier:  "XYZ-789",
			Notes:       "Visitor vehicle",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedIfEmpty inserts the sample profiles when the store holds none.
// Existing data is never touched.
func SeedIfEmpty(ctx context.Context, s Store, now time.Time) error {
	existing, err := s.ListProfiles(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range SampleProfiles(now) {
		if err := s.InsertProfile(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
