package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsMoved,
			Help: HelpTextItemsMoved,
		},
		[]string{LabelOperation},
	)

	ItemsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGranted,
			Help: HelpTextItemsGranted,
		},
		[]string{LabelItem},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelItem},
	)

	StacksSplit = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStacksSplit,
			Help: HelpTextStacksSplit,
		},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelBodySlot},
	)

	ItemsUnequipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUnequipped,
			Help: HelpTextItemsUnequipped,
		},
		[]string{LabelBodySlot},
	)

	ContainersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContainersCreated,
			Help: HelpTextContainersCreated,
		},
		[]string{LabelKind},
	)

	ContainersDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContainersDeleted,
			Help: HelpTextContainersDeleted,
		},
		[]string{LabelKind},
	)

	StacksSpilled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStacksSpilled,
			Help: HelpTextStacksSpilled,
		},
	)
)
