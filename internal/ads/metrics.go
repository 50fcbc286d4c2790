package ads

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adsd",
			Subsystem: "ads",
			Name:      "loads_total",
			Help:      "Total ad load attempts started",
		},
		[]string{"kind"},
	)

	showsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adsd",
			Subsystem: "ads",
			Name:      "shows_total",
			Help:      "Total ad presentations spawned",
		},
		[]string{"kind"},
	)

	closesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "adsd",
			Subsystem: "ads",
			Name:      "closes_total",
			Help:      "Total ad presentations torn down",
		},
		[]string{"kind"},
	)

	rewardsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "adsd",
			Subsystem: "ads",
			Name:      "rewards_total",
			Help:      "Total rewards earned from rewarded ads",
		},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, showsTotal, closesTotal, rewardsTotal)
}
