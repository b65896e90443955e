package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"numeric":           "must be a number",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"datetime":          "must follow the %s format",
	"phone_number":      "phone number is invalid",
	"not_past_date":     "date cannot be in the past",
	"appointment_state": "must be scheduled, completed or cancelled",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}

// Tags whose message already reads as a full sentence.
var TagsWithStandaloneMessage = map[string]bool{
	"phone_number":  true,
	"not_past_date": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPageNotFound                  = "the page you are looking for does not exist"
	ErrClientStylistNotFound               = "Stylist not found"

	ErrClientLoadStylists          = "Failed to load stylists. Please try again later."
	ErrClientLoadStylistDetails    = "Failed to load stylist details. Please try again later."
	ErrClientLoadAppointments      = "Failed to load appointments. Please try again later."
	ErrClientLoadAppointment       = "Failed to load appointment. Please try again later."
	ErrClientLoadAvailableSlots    = "Failed to load available slots. Please try again later."
	ErrClientCreateStylist         = "Failed to create stylist. Please try again."
	ErrClientBookAppointment       = "Failed to book appointment."
	ErrClientCancelAppointment     = "Failed to cancel appointment. Please try again."
	ErrClientRescheduleAppointment = "Failed to reschedule appointment. Please try again."
	ErrClientAppointmentNotActive  = "Only scheduled appointments can be changed."
	ErrClientDurationNotOffered    = "The selected duration is not offered."
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseTime        = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm        = "cannot parse form body"
	ErrDevValidationFailed       = "validation failed"
	ErrDevURLParamIDValidation   = "parameter %s validation failed"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevSalonAPIRequest        = "salon API %s %s responded with status %d"
	ErrDevSalonAPIDecodeResponse = "failed to decode salon API %s response"
	ErrDevSalonAPIThrottled      = "outbound limiter for salon API refused the call"
	ErrDevStatusTransition       = "appointment status cannot move from %s to %s"
	ErrDevRenderTemplate         = "failed to render template %s"

	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
)
