// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pizzahouse"

var (
	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Orders accepted, by order type",
	}, []string{"type"})

	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Applied status transitions",
	}, []string{"from", "to"})

	// in_zone, out_of_zone or unavailable
	ZoneResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "zones",
		Name:      "resolutions_total",
		Help:      "Zone resolutions by outcome",
	}, []string{"outcome"})

	SlotBookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "zones",
		Name:      "slot_bookings_total",
		Help:      "Slot booking attempts by result",
	}, []string{"result"})

	SideEffectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "side_effects",
		Name:      "tasks_total",
		Help:      "Background side-effect tasks by name and status",
	}, []string{"task", "status"})

	SideEffectQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "side_effects",
		Name:      "queue_depth",
		Help:      "Tasks waiting for a worker",
	})

	ZoneCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "zone_lookups_total",
		Help:      "Zone snapshot cache lookups",
	}, []string{"result"}) // hit, miss or error

	WebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "websocket",
		Name:      "clients",
		Help:      "Connected order stream clients",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func ObserveSideEffect(task string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	SideEffectsTotal.WithLabelValues(task, status).Inc()
}
