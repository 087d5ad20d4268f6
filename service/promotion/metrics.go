package promotion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "promo",
	Name:      "deliveries_total",
	Help:      "Number of channel delivery attempts by result",
}, []string{"channel", "result"})

var triggerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "promo",
	Name:      "trigger_runs_total",
	Help:      "Number of trigger evaluations by result",
}, []string{"trigger_type", "result"})

var triggerCustomersFoundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "promo",
	Name:      "trigger_customers_found_total",
	Help:      "Number of cohort customers found by trigger evaluations",
}, []string{"trigger_type"})

var pendingDeliveriesQueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "promo",
	Name:      "pending_deliveries_queued_total",
	Help:      "Number of pending delivery intents queued",
})

const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultSkipped = "skipped"
)

func resultLabel(success bool) string {
	if success {
		return resultSuccess
	}
	return resultFailure
}
