package hardwareservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hardwareMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventory",
		Subsystem: "hardware",
		Name:      "mutations_total",
		Help:      "Hardware create/update/delete operations broken down by operation and result.",
	}, []string{"op", "result"})

	importRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventory",
		Subsystem: "hardware",
		Name:      "import_rows_total",
		Help:      "Imported spreadsheet rows broken down by outcome.",
	}, []string{"outcome"})

	listCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventory",
		Subsystem: "hardware",
		Name:      "list_cache_total",
		Help:      "Flattened listing cache lookups broken down by hit or miss.",
	}, []string{"result"})
)

func observeMutation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	hardwareMutations.WithLabelValues(op, result).Inc()
}
