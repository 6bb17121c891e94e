package observability

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MatchMetrics counts dispatch outcomes per match lifecycle stage.
type MatchMetrics struct {
	MatchesCreated    prometheus.Counter
	MatchesConfirmed  prometheus.Counter
	MatchesCancelled  prometheus.Counter
	MatchesReassigned prometheus.Counter
	NoDriverFound     prometheus.Counter
}

// NewMatchMetrics registers the dispatch counters with the given registerer.
// Passing nil uses the default registry.
func NewMatchMetrics(reg prometheus.Registerer) *MatchMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &MatchMetrics{
		MatchesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_matches_created_total",
			Help: "Number of rider requests that produced a match proposal",
		}),
		MatchesConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_matches_confirmed_total",
			Help: "Number of matches confirmed by driver acceptance",
		}),
		MatchesCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_matches_cancelled_total",
			Help: "Number of matches cancelled after decline with no replacement driver",
		}),
		MatchesReassigned: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_matches_reassigned_total",
			Help: "Number of matches reassigned to another driver after a decline",
		}),
		NoDriverFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_no_driver_found_total",
			Help: "Number of rider requests for which no eligible driver existed",
		}),
	}
}

// RegisterMetricsEndpoint exposes the Prometheus scrape endpoint.
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
