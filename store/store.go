// Package store defines the persistence contract for the register's two
// collections.  A Store is the only component that touches the records;
// the registry mediates every mutation and never caches reads.
package store

import (
	"context"

	"github.com/kofasentinel/atlas/types"
)

// Store owns the Profile and AccessLog collections plus the blacklist
// audit trail.  List methods return records in insertion order (search
// ranking relies on that order for tie-breaks).  Get methods report
// absence with ok=false, not an error.  Every mutating call must be
// durable before it returns nil.
type Store interface {
	ListProfiles(ctx context.Context) ([]types.Profile, error)
	GetProfile(ctx context.Context, profileID string) (types.Profile, bool, error)
	InsertProfile(ctx context.Context, p types.Profile) error
	UpdateProfile(ctx context.Context, p types.Profile) error
	// DeleteProfile removes the profile and every access log that
	// references it, in one committed step.
	DeleteProfile(ctx context.Context, profileID string) error

	ListAccessLogs(ctx context.Context) ([]types.AccessLog, error)
	GetAccessLog(ctx context.Context, logID string) (types.AccessLog, bool, error)
	InsertAccessLog(ctx context.Context, l types.AccessLog) error
	UpdateAccessLog(ctx context.Context, l types.AccessLog) error
	DeleteAllAccessLogs(ctx context.Context) error

	InsertBlacklistEvent(ctx context.Context, ev types.BlacklistEvent) error
	ListBlacklistEvents(ctx context.Context, profileID string) ([]types.BlacklistEvent, error)
}
