package categorizer

import "github.com/prometheus/client_golang/prometheus"

var classifications = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "classifications_total",
		Help: "How many transactions have been categorized, partitioned by the source of the category.",
	},
	[]string{"source"},
)

var classifierErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "classifier_errors_total",
		Help: "How many calls to the primary classifier failed and fell back to the rules.",
	},
	[]string{"reason"},
)

// Metrics are the Prometheus collectors of the package. They need to be
// registered by the caller.
var Metrics = []prometheus.Collector{
	classifications,
	classifierErrors,
}
