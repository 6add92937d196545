// Package metrics defines the Prometheus metrics exported by the service.
// It is the single source of truth for metric names, labels, and help
// strings. Collectors are registered with the default registry at init time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bragboard"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ShoutoutsCreatedTotal counts shoutouts successfully created.
var ShoutoutsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shoutouts_created_total",
		Help:      "Total number of shoutouts created.",
	},
)

// NotificationsSentTotal counts notifications fanned out to recipients.
// Label:
//   - trigger: "create" or "update" (which shoutout operation caused it)
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of recipient notifications written, by trigger.",
	},
	[]string{"trigger"},
)
