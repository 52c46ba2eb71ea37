package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kofasentinel/atlas/types"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (types.Profile, error) {
	var p types.Profile
	var profileType string
	var email, company, driverName, driverPhone, photoURL, notes, linked sql.NullString
	var blacklisted int
	var createdMs, updatedMs int64

	err := row.Scan(
		&p.ProfileID, &profileType, &p.Name, &p.Identifier,
		&email, &company, &driverName, &driverPhone, &photoURL, &notes,
		&blacklisted, &linked, &createdMs, &updatedMs,
	)
	if err == sql.ErrNoRows {
		return types.Profile{}, err
	}
	if err != nil {
		return types.Profile{}, fmt.Errorf("scan profile: %w", err)
	}

	p.ProfileType = types.ProfileType(profileType)
	p.Email = email.String
	p.Company = company.String
	p.DriverName = driverName.String
	p.DriverPhone = driverPhone.String
	p.PhotoURL = photoURL.String
	p.Notes = notes.String
	p.Blacklisted = blacklisted != 0
	p.LinkedProfileID = linked.String
	p.CreatedAt = time.UnixMilli(createdMs).UTC()
	p.UpdatedAt = time.UnixMilli(updatedMs).UTC()
	return p, nil
}

func scanAccessLog(row rowScanner) (types.AccessLog, error) {
	var l types.AccessLog
	var entryMs int64
	var exitMs sql.NullInt64
	var status string
	var associated, purpose, guardNotes sql.NullString

	err := row.Scan(
		&l.LogID, &l.ProfileID, &entryMs, &exitMs,
		&status, &associated, &purpose, &guardNotes,
	)
	if err == sql.ErrNoRows {
		return types.AccessLog{}, err
	}
	if err != nil {
		return types.AccessLog{}, fmt.Errorf("scan access log: %w", err)
	}

	l.EntryTime = time.UnixMilli(entryMs).UTC()
	if exitMs.Valid {
		t := time.UnixMilli(exitMs.Int64).UTC()
		l.ExitTime = &t
	}
	l.Status = types.AccessStatus(status)
	l.AssociatedProfileID = associated.String
	l.Purpose = purpose.String
	l.GuardNotes = guardNotes.String
	return l, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTimeMs(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().UnixMilli()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
