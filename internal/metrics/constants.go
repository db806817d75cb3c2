package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCropsPlanted       = "crops_planted_total"
	MetricNameCropsHarvested     = "crops_harvested_total"
	MetricNameCropsSold          = "crops_sold_total"
	MetricNameContractsCompleted = "contracts_completed_total"
	MetricNameListingsCreated    = "market_listings_created_total"
	MetricNameListingsSold       = "market_listings_sold_total"
	MetricNameCoinsEarned        = "coins_earned_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCropsPlanted       = "Total number of crops planted"
	HelpTextCropsHarvested     = "Total number of crops harvested"
	HelpTextCropsSold          = "Total number of crops sold to the NPC buyer"
	HelpTextContractsCompleted = "Total number of delivery contracts completed"
	HelpTextListingsCreated    = "Total number of market listings created"
	HelpTextListingsSold       = "Total number of market listings bought out"
	HelpTextCoinsEarned        = "Total coins earned from sales and contracts"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCrop   = "crop"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
