package types

import "time"

type MatchType string

const (
	MatchName       MatchType = "name"
	MatchIdentifier MatchType = "identifier"
	MatchBoth       MatchType = "both"
)

// ProfileSearchResult is one ranked hit from a free-text search.
type ProfileSearchResult struct {
	Profile    Profile   `json:"profile"`
	MatchType  MatchType `json:"match_type"`
	MatchScore int       `json:"match_score"`
}

// AccessLogWithProfile is a log joined to its owning profile, plus the
// optional associated profile when it still resolves.
type AccessLogWithProfile struct {
	AccessLog
	Profile           Profile  `json:"profile"`
	AssociatedProfile *Profile `json:"associated_profile,omitempty"`
}

// ProfileWithLogs is a profile joined to its most recent activity.
type ProfileWithLogs struct {
	Profile
	RecentLogs        []AccessLog `json:"recent_logs"`
	IsCurrentlyInside bool        `json:"is_currently_inside"`
}

// AccessLogFilters narrows the joined log view.  Zero values mean "any".
type AccessLogFilters struct {
	Start       time.Time
	End         time.Time
	ProfileType ProfileType
	Status      AccessStatus
	SearchQuery string
}

// DashboardStats is the admin dashboard's counter block.  The three
// entry windows are computed independently and overlap.
type DashboardStats struct {
	TotalProfiles       int `json:"total_profiles"`
	TotalAccessLogs     int `json:"total_access_logs"`
	CurrentlyInside     int `json:"currently_inside"`
	TodayEntries        int `json:"today_entries"`
	ThisWeekEntries     int `json:"this_week_entries"`
	ThisMonthEntries    int `json:"this_month_entries"`
	BlacklistedProfiles int `json:"blacklisted_profiles"`
}

// ProfileTypeStats splits the register by profile type.
type ProfileTypeStats struct {
	Individual int `json:"individual"`
	Vehicle    int `json:"vehicle"`
}
