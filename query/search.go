// Package query holds the read-only derivations over the register's
// collections: search ranking, joined views, dashboard counters, and
// traffic histograms.  Everything here is pure and recomputed per call;
// the registry hands in fresh snapshots.
package query

import (
	"sort"
	"strings"

	"github.com/kofasentinel/atlas/types"
)

// Match scores: hitting both fields outranks an identifier hit, which
// outranks a name hit.  Ties keep the collection's insertion order.
const (
	scoreBoth       = 100
	scoreIdentifier = 90
	scoreName       = 80
)

// SearchProfiles ranks profiles whose name or identifier contains the
// query, case-insensitively.  A blank query matches nothing.
func SearchProfiles(profiles []types.Profile, q string) []types.ProfileSearchResult {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}

	var results []types.ProfileSearchResult
	for _, p := range profiles {
		nameMatch := strings.Contains(strings.ToLower(p.Name), q)
		identMatch := strings.Contains(strings.ToLower(p.Identifier), q)
		if !nameMatch && !identMatch {
			continue
		}

		r := types.ProfileSearchResult{Profile: p}
		switch {
		case nameMatch && identMatch:
			r.MatchType = types.MatchBoth
			r.MatchScore = scoreBoth
		case identMatch:
			r.MatchType = types.MatchIdentifier
			r.MatchScore = scoreIdentifier
		default:
			r.MatchType = types.MatchName
			r.MatchScore = scoreName
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}
