package query

import (
	"time"

	"github.com/kofasentinel/atlas/types"
)

// Stats derives the dashboard counters from a snapshot.  The three
// entry windows are anchored at now and computed independently:
// today is the start of the calendar day in now's location, the week is
// a rolling 7×24h, and the month runs from the same day-of-month one
// calendar month back.
func Stats(profiles []types.Profile, logs []types.AccessLog, now time.Time) types.DashboardStats {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	weekStart := now.Add(-7 * 24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, loc)

	stats := types.DashboardStats{
		TotalProfiles:   len(profiles),
		TotalAccessLogs: len(logs),
	}

	for _, l := range logs {
		if !l.EntryTime.Before(todayStart) {
			stats.TodayEntries++
		}
		if !l.EntryTime.Before(weekStart) {
			stats.ThisWeekEntries++
		}
		if !l.EntryTime.Before(monthStart) {
			stats.ThisMonthEntries++
		}
		if l.Status == types.StatusInside {
			stats.CurrentlyInside++
		}
	}

	for _, p := range profiles {
		if p.Blacklisted {
			stats.BlacklistedProfiles++
		}
	}
	return stats
}

// ProfileTypeCounts splits the register into individuals and vehicles.
func ProfileTypeCounts(profiles []types.Profile) types.ProfileTypeStats {
	var out types.ProfileTypeStats
	for _, p := range profiles {
		switch p.ProfileType {
		case types.ProfileTypeIndividual:
			out.Individual++
		case types.ProfileTypeVehicle:
			out.Vehicle++
		}
	}
	return out
}

// BlacklistedProfiles returns the restricted subset in insertion order.
func BlacklistedProfiles(profiles []types.Profile) []types.Profile {
	var out []types.Profile
	for _, p := range profiles {
		if p.Blacklisted {
			out = append(out, p)
		}
	}
	return out
}
