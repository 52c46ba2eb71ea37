package query

import (
	"sort"
	"strings"

	"github.com/kofasentinel/atlas/types"
)

// recentLogLimit caps the per-profile activity view.
const recentLogLimit = 5

// LogsWithProfiles inner-joins logs to their owning profile.  A log
// whose profile no longer exists is dropped silently; the associated
// profile is a weak reference and resolves to nil when gone.
func LogsWithProfiles(profiles []types.Profile, logs []types.AccessLog) []types.AccessLogWithProfile {
	byID := profileIndex(profiles)

	var out []types.AccessLogWithProfile
	for _, l := range logs {
		owner, ok := byID[l.ProfileID]
		if !ok {
			continue
		}
		joined := types.AccessLogWithProfile{AccessLog: l, Profile: owner}
		if l.AssociatedProfileID != "" {
			if assoc, ok := byID[l.AssociatedProfileID]; ok {
				a := assoc
				joined.AssociatedProfile = &a
			}
		}
		out = append(out, joined)
	}
	return out
}

// ProfilesWithRecentLogs pairs every profile with its five most recent
// logs (entry time descending) and whether it is currently inside.
func ProfilesWithRecentLogs(profiles []types.Profile, logs []types.AccessLog) []types.ProfileWithLogs {
	out := make([]types.ProfileWithLogs, 0, len(profiles))
	for _, p := range profiles {
		var own []types.AccessLog
		inside := false
		for _, l := range logs {
			if l.ProfileID != p.ProfileID {
				continue
			}
			own = append(own, l)
			if l.Status == types.StatusInside {
				inside = true
			}
		}

		sort.SliceStable(own, func(i, j int) bool {
			return own[i].EntryTime.After(own[j].EntryTime)
		})
		if len(own) > recentLogLimit {
			own = own[:recentLogLimit]
		}

		out = append(out, types.ProfileWithLogs{
			Profile:           p,
			RecentLogs:        own,
			IsCurrentlyInside: inside,
		})
	}
	return out
}

// FilterLogs narrows a joined log view.  Zero-valued filter fields match
// everything; the search query matches the owning profile's name or
// identifier, or the log's purpose.
func FilterLogs(joined []types.AccessLogWithProfile, f types.AccessLogFilters) []types.AccessLogWithProfile {
	q := strings.ToLower(strings.TrimSpace(f.SearchQuery))

	var out []types.AccessLogWithProfile
	for _, l := range joined {
		if !f.Start.IsZero() && l.EntryTime.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && l.EntryTime.After(f.End) {
			continue
		}
		if f.ProfileType != "" && l.Profile.ProfileType != f.ProfileType {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(l.Profile.Name), q) &&
			!strings.Contains(strings.ToLower(l.Profile.Identifier), q) &&
			!strings.Contains(strings.ToLower(l.Purpose), q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func profileIndex(profiles []types.Profile) map[string]types.Profile {
	byID := make(map[string]types.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ProfileID] = p
	}
	return byID
}
