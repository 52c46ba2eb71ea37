// Package metrics exposes the register's operation counters.  The
// embedding application decides where they are scraped from; the
// registry only increments them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entry denial reasons used as the reason label on EntriesDenied.
const (
	ReasonBlacklisted   = "blacklisted"
	ReasonAlreadyInside = "already_inside"
	ReasonUnknown       = "unknown_profile"
)

type Metrics struct {
	ProfilesCreated prometheus.Counter
	ProfilesDeleted prometheus.Counter
	EntriesGranted  prometheus.Counter
	EntriesDenied   *prometheus.CounterVec
	ExitsLogged     prometheus.Counter
}

// New registers the counters with reg.  Pass prometheus.NewRegistry()
// (or nil) for an isolated set, e.g. in tests.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		ProfilesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "profiles_created_total",
			Help:      "Profiles admitted to the register.",
		}),
		ProfilesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "profiles_deleted_total",
			Help:      "Profiles removed from the register.",
		}),
		EntriesGranted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "entries_granted_total",
			Help:      "Entry events recorded.",
		}),
		EntriesDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "entries_denied_total",
			Help:      "Entry attempts rejected, by reason.",
		}, []string{"reason"}),
		ExitsLogged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "exits_logged_total",
			Help:      "Exit events recorded.",
		}),
	}
}
