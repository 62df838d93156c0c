package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "economy_actions_total",
			Help: "Resolved economy actions by kind and outcome",
		},
		[]string{"action", "outcome"},
	)
	CoinsMinted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "economy_coins_minted_total",
			Help: "Doubloons created by earning actions",
		},
	)
	CoinsTransferred = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "economy_coins_transferred_total",
			Help: "Doubloons moved between accounts",
		},
	)
)

func init() {
	prometheus.MustRegister(ActionsTotal)
	prometheus.MustRegister(CoinsMinted)
	prometheus.MustRegister(CoinsTransferred)
}
