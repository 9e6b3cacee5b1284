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

// Business Metrics
var (
	PlayersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersRegistered,
			Help: HelpTextPlayersRegistered,
		},
	)

	UpgradeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeAttempts,
			Help: HelpTextUpgradeAttempts,
		},
		[]string{LabelResult},
	)

	WeaponsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeaponsSold,
			Help: HelpTextWeaponsSold,
		},
	)

	BattlesFought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesFought,
			Help: HelpTextBattlesFought,
		},
		[]string{LabelResult},
	)

	HuntsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHuntsResolved,
			Help: HelpTextHuntsResolved,
		},
		[]string{LabelReward},
	)

	CheckinsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCheckinsClaimed,
			Help: HelpTextCheckinsClaimed,
		},
	)

	ProductsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProductsClaimed,
			Help: HelpTextProductsClaimed,
		},
		[]string{LabelProduct},
	)
)
