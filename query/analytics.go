package query

import (
	"sort"
	"time"

	"github.com/kofasentinel/atlas/types"
)

// Window selects how far back the hourly histogram looks.
type Window int

const (
	Window24h Window = iota
	Window7d
	Window30d
)

func (w Window) Duration() time.Duration {
	switch w {
	case Window7d:
		return 7 * 24 * time.Hour
	case Window30d:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Hours is the window length used for the average entry rate.
func (w Window) Hours() int {
	return int(w.Duration() / time.Hour)
}

func (w Window) String() string {
	switch w {
	case Window7d:
		return "7d"
	case Window30d:
		return "30d"
	default:
		return "24h"
	}
}

// Peak and quiet reporting caps, matching the dashboard's five-row lists.
const (
	peakHourLimit  = 5
	quietHourLimit = 5
	// quietThreshold marks an hour bucket as quiet when it saw at most
	// this many entries.
	quietThreshold = 1
)

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// HourOfDayHistogram buckets entries within the window by hour of day,
// evaluated in now's location.
func HourOfDayHistogram(logs []types.AccessLog, w Window, now time.Time) [24]int {
	cutoff := now.Add(-w.Duration())
	loc := now.Location()

	var hist [24]int
	for _, l := range logs {
		if l.EntryTime.Before(cutoff) {
			continue
		}
		hist[l.EntryTime.In(loc).Hour()]++
	}
	return hist
}

// DayOfWeekHistogram buckets all entries by weekday (Sunday = 0).
func DayOfWeekHistogram(logs []types.AccessLog) [7]int {
	var hist [7]int
	for _, l := range logs {
		hist[int(l.EntryTime.Weekday())]++
	}
	return hist
}

// PeakHours returns the busiest non-empty buckets, highest count first,
// ties broken by the earlier hour, capped at n.
func PeakHours(hist [24]int, n int) []HourCount {
	var peaks []HourCount
	for hour, count := range hist {
		if count > 0 {
			peaks = append(peaks, HourCount{Hour: hour, Count: count})
		}
	}
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Count > peaks[j].Count
	})
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

// QuietHours lists hours at or below the quiet threshold, ascending,
// capped at max.
func QuietHours(hist [24]int, max int) []int {
	var quiet []int
	for hour, count := range hist {
		if count <= quietThreshold {
			quiet = append(quiet, hour)
			if len(quiet) == max {
				break
			}
		}
	}
	return quiet
}

// QuietPeriod is a run of consecutive quiet hours.
type QuietPeriod struct {
	StartHour int `json:"start_hour"`
	Length    int `json:"length"`
}

// LongestQuietPeriod finds the longest consecutive quiet run across the
// day, scanning 0..23 without wraparound.
func LongestQuietPeriod(hist [24]int) (QuietPeriod, bool) {
	var best, current QuietPeriod
	for hour := 0; hour < 24; hour++ {
		if hist[hour] <= quietThreshold {
			if current.Length == 0 {
				current.StartHour = hour
			}
			current.Length++
			if current.Length > best.Length {
				best = current
			}
		} else {
			current.Length = 0
		}
	}
	return best, best.Length > 0
}

// TrafficReport bundles the analytics the dashboard renders for one
// window selection.
type TrafficReport struct {
	Window            Window      `json:"window"`
	HourOfDay         [24]int     `json:"hour_of_day"`
	DayOfWeek         [7]int      `json:"day_of_week"`
	PeakHours         []HourCount `json:"peak_hours"`
	QuietHours        []int       `json:"quiet_hours"`
	AvgHourlyRate     float64     `json:"avg_hourly_rate"`
	PredictedPeakHour int         `json:"predicted_peak_hour"` // -1 when no data
	LongestQuiet      QuietPeriod `json:"longest_quiet"`
}

// BuildTrafficReport assembles the full analytics block.  The average
// rate spreads every recorded entry over the window length; the
// predicted peak is simply the hour after the current top peak.
func BuildTrafficReport(logs []types.AccessLog, w Window, now time.Time) TrafficReport {
	hist := HourOfDayHistogram(logs, w, now)
	peaks := PeakHours(hist, peakHourLimit)

	report := TrafficReport{
		Window:            w,
		HourOfDay:         hist,
		DayOfWeek:         DayOfWeekHistogram(logs),
		PeakHours:         peaks,
		QuietHours:        QuietHours(hist, quietHourLimit),
		AvgHourlyRate:     float64(len(logs)) / float64(w.Hours()),
		PredictedPeakHour: -1,
	}
	if len(logs) == 0 {
		report.AvgHourlyRate = 0
	}
	if len(peaks) > 0 {
		report.PredictedPeakHour = (peaks[0].Hour + 1) % 24
	}
	if quiet, ok := LongestQuietPeriod(hist); ok {
		report.LongestQuiet = quiet
	}
	return report
}
