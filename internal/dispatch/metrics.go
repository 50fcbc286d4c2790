package dispatch

import "github.com/prometheus/client_golang/prometheus"

var (
	eventsDispatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adsd",
			Subsystem: "events",
			Name:      "dispatched_total",
			Help:      "Total lifecycle events delivered to observers",
		},
		[]string{"type"},
	)

	pendingEvents = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "adsd",
			Subsystem: "events",
			Name:      "pending",
			Help:      "Events queued and not yet dispatched, sampled after each dispatch",
		},
	)
)

func init() {
	prometheus.MustRegister(eventsDispatchedTotal, pendingEvents)
}
