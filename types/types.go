// Package types holds the records the register owns and the forms the
// UI collaborator submits.  Optional fields are plain strings where an
// empty value means "not set"; update forms use pointers so an absent
// field can be told apart from a cleared one.
package types

import "time"

type ProfileType string

const (
	ProfileTypeIndividual ProfileType = "Individual"
	ProfileTypeVehicle    ProfileType = "Vehicle"
)

// Profile is a registered entity eligible for gate access.  Identifier
// is the real-world key: a phone number for individuals, a plate number
// for vehicles.  It is unique across all profiles, case-insensitively.
type Profile struct {
	ProfileID   string      `json:"profile_id"`
	ProfileType ProfileType `json:"profile_type"`
	Name        string      `json:"name"`
	Identifier  string      `json:"identifier"`

	Email       string `json:"email,omitempty"`        // individuals
	Company     string `json:"company,omitempty"`      // individuals
	DriverName  string `json:"driver_name,omitempty"`  // vehicles
	DriverPhone string `json:"driver_phone,omitempty"` // vehicles

	PhotoURL string `json:"photo_url,omitempty"`
	Notes    string `json:"notes,omitempty"`

	Blacklisted bool `json:"blacklisted"`

	// LinkedProfileID weakly points a vehicle at its usual driver.
	// The target may have been deleted; resolution happens on read.
	LinkedProfileID string `json:"linked_profile_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AccessStatus string

const (
	StatusInside AccessStatus = "Inside"
	StatusExited AccessStatus = "Exited"
)

// AccessLog records one entry (and eventual exit) of a profile.
type AccessLog struct {
	LogID     string       `json:"log_id"`
	ProfileID string       `json:"profile_id"`
	EntryTime time.Time    `json:"entry_time"`
	ExitTime  *time.Time   `json:"exit_time,omitempty"` // set exactly once, on exit
	Status    AccessStatus `json:"status"`

	// AssociatedProfileID links this specific entry to a second
	// profile, e.g. the driver who came in with a vehicle.
	AssociatedProfileID string `json:"associated_profile_id,omitempty"`

	Purpose    string `json:"purpose,omitempty"`
	GuardNotes string `json:"guard_notes,omitempty"`
}

// BlacklistEvent is one step of a profile's blacklist audit trail:
// who was restricted or cleared, when, and why.
type BlacklistEvent struct {
	EventID     string    `json:"event_id"`
	ProfileID   string    `json:"profile_id"`
	Blacklisted bool      `json:"blacklisted"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProfileForm is the registration input.  Validation tags cover
// shape; identifier format is checked per profile type separately.
type CreateProfileForm struct {
	ProfileType ProfileType `json:"profile_type" validate:"required,oneof=Individual Vehicle"`
	Name        string      `json:"name" validate:"required"`
	Identifier  string      `json:"identifier" validate:"required"`

	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Company     string `json:"company,omitempty"`
	DriverName  string `json:"driver_name,omitempty"`
	DriverPhone string `json:"driver_phone,omitempty"`

	PhotoURL        string `json:"photo_url,omitempty"`
	Notes           string `json:"notes,omitempty"`
	LinkedProfileID string `json:"linked_profile_id,omitempty"`
}

// UpdateProfileForm carries a partial edit.  Nil fields are left alone.
type UpdateProfileForm struct {
	ProfileID string `json:"profile_id" validate:"required"`

	ProfileType *ProfileType `json:"profile_type,omitempty" validate:"omitempty,oneof=Individual Vehicle"`
	Name        *string      `json:"name,omitempty"`
	Identifier  *string      `json:"identifier,omitempty"`

	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Company     *string `json:"company,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`
	DriverPhone *string `json:"driver_phone,omitempty"`

	PhotoURL        *string `json:"photo_url,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	LinkedProfileID *string `json:"linked_profile_id,omitempty"`
}
