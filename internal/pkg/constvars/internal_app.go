package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_THEME_KEY                ContextKey = "theme"
)

// Salon API resources, relative to the API prefix.
const (
	ResourceStylists     = "/stylists"
	ResourceCustomers    = "/customers"
	ResourceAppointments = "/appointments"
)

const (
	ActionAvailability = "/availability"
	ActionCancel       = "/cancel"
	ActionReschedule   = "/reschedule"
)

const (
	CacheKeyStylistList = "cosmek:stylists:all"
)

const (
	AppName = "COSMEK.BEAUTY"
)
