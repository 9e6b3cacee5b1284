package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlayersRegistered = "players_registered_total"
	MetricNameUpgradeAttempts   = "upgrade_attempts_total"
	MetricNameWeaponsSold       = "weapons_sold_total"
	MetricNameBattlesFought     = "battles_fought_total"
	MetricNameHuntsResolved     = "hunts_resolved_total"
	MetricNameCheckinsClaimed   = "checkins_claimed_total"
	MetricNameProductsClaimed   = "products_claimed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlayersRegistered = "Total number of player registrations"
	HelpTextUpgradeAttempts   = "Total number of upgrade attempts by outcome"
	HelpTextWeaponsSold       = "Total number of weapons sold"
	HelpTextBattlesFought     = "Total number of battles by outcome"
	HelpTextHuntsResolved     = "Total number of resolved hunts by reward type"
	HelpTextCheckinsClaimed   = "Total number of check-in claims"
	HelpTextProductsClaimed   = "Total number of shop products claimed"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelReward  = "reward"
	LabelProduct = "product"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
