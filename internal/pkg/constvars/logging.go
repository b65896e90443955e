package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingStylistIDKey      = "stylist_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingFilterKey         = "filter"
	LoggingDateKey           = "date"
	LoggingThemeKey          = "theme"
	LoggingEventTypeKey      = "event_type"
	LoggingURLKey            = "url"
)
