package query_test

import (
	"testing"
	"time"

	"github.com/kofasentinel/atlas/query"
	"github.com/kofasentinel/atlas/types"
)

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func logAt(id, profileID string, entry time.Time, status types.AccessStatus) types.AccessLog {
	return types.AccessLog{
		LogID:     id,
		ProfileID: profileID,
		EntryTime: entry,
		Status:    status,
	}
}

func TestLogsWithProfiles_DropsOrphans(t *testing.T) {
	profiles := []types.Profile{profile("John Doe", "08123456789")}
	logs := []types.AccessLog{
		logAt("l1", "id-08123456789", base, types.StatusInside),
		logAt("l2", "deleted-profile", base, types.StatusInside),
	}

	joined := query.LogsWithProfiles(profiles, logs)
	if len(joined) != 1 {
		t.Fatalf("expected orphan dropped, got %d rows", len(joined))
	}
	if joined[0].LogID != "l1" || joined[0].Profile.Name != "John Doe" {
		t.Errorf("wrong join row: %+v", joined[0])
	}
}

func TestLogsWithProfiles_ResolvesAssociatedWeakly(t *testing.T) {
	driver := profile("John Doe", "08123456789")
	car := types.Profile{
		ProfileID:   "car-1",
		ProfileType: types.ProfileTypeVehicle,
		Name:        "Toyota Camry",
		Identifier:  "ABC-123",
	}
	profiles := []types.Profile{driver, car}

	withDriver := logAt("l1", "car-1", base, types.StatusInside)
	withDriver.AssociatedProfileID = driver.ProfileID
	dangling := logAt("l2", "car-1", base.Add(time.Hour), types.StatusInside)
	dangling.AssociatedProfileID = "gone"

	joined := query.LogsWithProfiles(profiles, []types.AccessLog{withDriver, dangling})
	if len(joined) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(joined))
	}
	if joined[0].AssociatedProfile == nil || joined[0].AssociatedProfile.Name != "John Doe" {
		t.Error("live associated profile not resolved")
	}
	if joined[1].AssociatedProfile != nil {
		t.Error("dangling associated reference must resolve to nil, not error")
	}
}

func TestProfilesWithRecentLogs_LimitsAndFlags(t *testing.T) {
	p := profile("John Doe", "08123456789")

	var logs []types.AccessLog
	for i := 0; i < 7; i++ {
		logs = append(logs, logAt(
			"l"+string(rune('0'+i)), p.ProfileID,
			base.Add(time.Duration(i)*time.Hour), types.StatusExited,
		))
	}
	// The most recent one is still open.
	logs[6].Status = types.StatusInside

	out := query.ProfilesWithRecentLogs([]types.Profile{p}, logs)
	if len(out) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(out))
	}
	got := out[0]
	if !got.IsCurrentlyInside {
		t.Error("expected isCurrentlyInside=true")
	}
	if len(got.RecentLogs) != 5 {
		t.Fatalf("expected 5 recent logs, got %d", len(got.RecentLogs))
	}
	for i := 1; i < len(got.RecentLogs); i++ {
		if got.RecentLogs[i].EntryTime.After(got.RecentLogs[i-1].EntryTime) {
			t.Fatal("recent logs not in entry-time descending order")
		}
	}
	if !got.RecentLogs[0].EntryTime.Equal(base.Add(6 * time.Hour)) {
		t.Errorf("newest log missing from recent slice: %v", got.RecentLogs[0].EntryTime)
	}
}

func TestProfilesWithRecentLogs_NoLogs(t *testing.T) {
	p := profile("John Doe", "08123456789")

	out := query.ProfilesWithRecentLogs([]types.Profile{p}, nil)
	if len(out) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(out))
	}
	if out[0].IsCurrentlyInside {
		t.Error("profile with no logs cannot be inside")
	}
	if len(out[0].RecentLogs) != 0 {
		t.Errorf("expected no recent logs, got %d", len(out[0].RecentLogs))
	}
}

func TestFilterLogs(t *testing.T) {
	john := profile("John Doe", "08123456789")
	car := types.Profile{
		ProfileID:   "car-1",
		ProfileType: types.ProfileTypeVehicle,
		Name:        "Toyota Camry",
		Identifier:  "ABC-123",
	}
	profiles := []types.Profile{john, car}

	l1 := logAt("l1", john.ProfileID, base, types.StatusExited)
	l1.Purpose = "meeting"
	l2 := logAt("l2", car.ProfileID, base.Add(3*time.Hour), types.StatusInside)
	l2.Purpose = "delivery"
	joined := query.LogsWithProfiles(profiles, []types.AccessLog{l1, l2})

	byType := query.FilterLogs(joined, types.AccessLogFilters{ProfileType: types.ProfileTypeVehicle})
	if len(byType) != 1 || byType[0].LogID != "l2" {
		t.Errorf("profile type filter: %+v", byType)
	}

	byStatus := query.FilterLogs(joined, types.AccessLogFilters{Status: types.StatusExited})
	if len(byStatus) != 1 || byStatus[0].LogID != "l1" {
		t.Errorf("status filter: %+v", byStatus)
	}

	byRange := query.FilterLogs(joined, types.AccessLogFilters{Start: base.Add(time.Hour)})
	if len(byRange) != 1 || byRange[0].LogID != "l2" {
		t.Errorf("date range filter: %+v", byRange)
	}

	byQuery := query.FilterLogs(joined, types.AccessLogFilters{SearchQuery: "camry"})
	if len(byQuery) != 1 || byQuery[0].LogID != "l2" {
		t.Errorf("search query filter: %+v", byQuery)
	}

	byPurpose := query.FilterLogs(joined, types.AccessLogFilters{SearchQuery: "meeting"})
	if len(byPurpose) != 1 || byPurpose[0].LogID != "l1" {
		t.Errorf("purpose query filter: %+v", byPurpose)
	}

	all := query.FilterLogs(joined, types.AccessLogFilters{})
	if len(all) != 2 {
		t.Errorf("empty filter must match everything, got %d", len(all))
	}
}
