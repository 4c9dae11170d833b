package constvars

import "time"

const (
	// DateOnlyLayout is the wire format for calendar dates (query params, maps).
	DateOnlyLayout = "2006-01-02"

	// ClockLayout is the wire format for wall-clock times inside opening-hour text.
	ClockLayout = "15:04"
)

const (
	// ModificationCutoff is how close to the start a booking becomes untouchable online.
	ModificationCutoff = 24 * time.Hour

	// BusyCacheTTL bounds staleness of cached free/busy data between requests.
	BusyCacheTTL = 30 * time.Second

	// ScheduleCacheTTL bounds staleness of cached weekly/exception rules.
	ScheduleCacheTTL = 5 * time.Minute

	// DuplicateCooldown is the window during which an identical booking attempt
	// is rejected as a duplicate instead of being written twice.
	DuplicateCooldown = 2 * time.Minute
)

const (
	RedisKeyBusyPrefix     = "booking:busy:"
	RedisKeySchedulePrefix = "booking:schedule:"
	RedisKeyCooldownPrefix = "booking:cooldown:"
)

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
)
