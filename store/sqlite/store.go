// Package sqlite is the durable Store.  Reads go straight to the single
// connection; every mutation runs through the db.Worker so it is
// committed before the call returns.  Rows come back in rowid order,
// which preserves insertion order for the snapshot contract.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbpkg "github.com/kofasentinel/atlas/internal/db"
	"github.com/kofasentinel/atlas/store"
	"github.com/kofasentinel/atlas/types"
)

type Store struct {
	conn   *sql.DB
	writer *dbpkg.Worker
}

var _ store.Store = (*Store)(nil)

func New(conn *sql.DB, writer *dbpkg.Worker) *Store {
	return &Store{conn: conn, writer: writer}
}

const profileColumns = `profile_id, profile_type, name, identifier,
email, company, driver_name, driver_phone, photo_url, notes,
blacklisted, linked_profile_id, created_at_ms, updated_at_ms`

func (s *Store) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY rowid;`)
	if err != nil {
		return nil, fmt.Errorf("ListProfiles query: %w", err)
	}
	defer rows.Close()

	var out []types.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetProfile(ctx context.Context, profileID string) (types.Profile, bool, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE profile_id = ?;`, profileID)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return types.Profile{}, false, nil
	}
	if err != nil {
		return types.Profile{}, false, err
	}
	return p, true, nil
}

func (s *Store) InsertProfile(ctx context.Context, p types.Profile) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO profiles(`+profileColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			p.ProfileID, string(p.ProfileType), p.Name, p.Identifier,
			nullString(p.Email), nullString(p.Company),
			nullString(p.DriverName), nullString(p.DriverPhone),
			nullString(p.PhotoURL), nullString(p.Notes),
			boolInt(p.Blacklisted), nullString(p.LinkedProfileID),
			p.CreatedAt.UTC().UnixMilli(), p.UpdatedAt.UTC().UnixMilli(),
		); err != nil {
			return fmt.Errorf("InsertProfile: %w", err)
		}
		return nil
	})
}

func (s *Store) UpdateProfile(ctx context.Context, p types.Profile) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
UPDATE profiles SET
  profile_type = ?, name = ?, identifier = ?,
  email = ?, company = ?, driver_name = ?, driver_phone = ?,
  photo_url = ?, notes = ?, blacklisted = ?, linked_profile_id = ?,
  created_at_ms = ?, updated_at_ms = ?
WHERE profile_id = ?;`,
			string(p.ProfileType), p.Name, p.Identifier,
			nullString(p.Email), nullString(p.Company),
			nullString(p.DriverName), nullString(p.DriverPhone),
			nullString(p.PhotoURL), nullString(p.Notes),
			boolInt(p.Blacklisted), nullString(p.LinkedProfileID),
			p.CreatedAt.UTC().UnixMilli(), p.UpdatedAt.UTC().UnixMilli(),
			p.ProfileID,
		); err != nil {
			return fmt.Errorf("UpdateProfile: %w", err)
		}
		return nil
	})
}

func (s *Store) DeleteProfile(ctx context.Context, profileID string) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM access_logs WHERE profile_id = ?;`, profileID); err != nil {
			return fmt.Errorf("DeleteProfile cascade logs: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM profiles WHERE profile_id = ?;`, profileID); err != nil {
			return fmt.Errorf("DeleteProfile: %w", err)
		}
		return nil
	})
}

const logColumns = `log_id, profile_id, entry_time_ms, exit_time_ms,
status, associated_profile_id, purpose, guard_notes`

func (s *Store) ListAccessLogs(ctx context.Context) ([]types.AccessLog, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+logColumns+` FROM access_logs ORDER BY rowid;`)
	if err != nil {
		return nil, fmt.Errorf("ListAccessLogs query: %w", err)
	}
	defer rows.Close()

	var out []types.AccessLog
	for rows.Next() {
		l, err := scanAccessLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) GetAccessLog(ctx context.Context, logID string) (types.AccessLog, bool, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+logColumns+` FROM access_logs WHERE log_id = ?;`, logID)
	l, err := scanAccessLog(row)
	if err == sql.ErrNoRows {
		return types.AccessLog{}, false, nil
	}
	if err != nil {
		return types.AccessLog{}, false, err
	}
	return l, true, nil
}

func (s *Store) InsertAccessLog(ctx context.Context, l types.AccessLog) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO access_logs(`+logColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
			l.LogID, l.ProfileID, l.EntryTime.UTC().UnixMilli(), nullTimeMs(l.ExitTime),
			string(l.Status), nullString(l.AssociatedProfileID),
			nullString(l.Purpose), nullString(l.GuardNotes),
		); err != nil {
			return fmt.Errorf("InsertAccessLog: %w", err)
		}
		return nil
	})
}

func (s *Store) UpdateAccessLog(ctx context.Context, l types.AccessLog) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
UPDATE access_logs SET
  profile_id = ?, entry_time_ms = ?, exit_time_ms = ?, status = ?,
  associated_profile_id = ?, purpose = ?, guard_notes = ?
WHERE log_id = ?;`,
			l.ProfileID, l.EntryTime.UTC().UnixMilli(), nullTimeMs(l.ExitTime),
			string(l.Status), nullString(l.AssociatedProfileID),
			nullString(l.Purpose), nullString(l.GuardNotes),
			l.LogID,
		); err != nil {
			return fmt.Errorf("UpdateAccessLog: %w", err)
		}
		return nil
	})
}

func (s *Store) DeleteAllAccessLogs(ctx context.Context) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM access_logs;`); err != nil {
			return fmt.Errorf("DeleteAllAccessLogs: %w", err)
		}
		return nil
	})
}

func (s *Store) InsertBlacklistEvent(ctx context.Context, ev types.BlacklistEvent) error {
	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO blacklist_events(event_id, profile_id, blacklisted, reason, created_at_ms)
VALUES (?, ?, ?, ?, ?);`,
			ev.EventID, ev.ProfileID, boolInt(ev.Blacklisted),
			nullString(ev.Reason), ev.CreatedAt.UTC().UnixMilli(),
		); err != nil {
			return fmt.Errorf("InsertBlacklistEvent: %w", err)
		}
		return nil
	})
}

func (s *Store) ListBlacklistEvents(ctx context.Context, profileID string) ([]types.BlacklistEvent, error) {
	rows, err := s.conn.QueryContext(ctx, `
SELECT event_id, profile_id, blacklisted, reason, created_at_ms
FROM blacklist_events WHERE profile_id = ? ORDER BY rowid;`, profileID)
	if err != nil {
		return nil, fmt.Errorf("ListBlacklistEvents query: %w", err)
	}
	defer rows.Close()

	var out []types.BlacklistEvent
	for rows.Next() {
		var ev types.BlacklistEvent
		var blacklisted int
		var reason sql.NullString
		var createdMs int64
		if err := rows.Scan(&ev.EventID, &ev.ProfileID, &blacklisted, &reason, &createdMs); err != nil {
			return nil, fmt.Errorf("ListBlacklistEvents scan: %w", err)
		}
		ev.Blacklisted = blacklisted != 0
		ev.Reason = reason.String
		ev.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, ev)
	}
	return out, rows.Err()
}
