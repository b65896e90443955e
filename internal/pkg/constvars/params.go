package constvars

const (
	URLParamStylistID     = "stylist_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamStatus    = "status"
	URLQueryParamStylistID = "stylist_id"
	URLQueryParamDate      = "date"
	URLQueryParamDuration  = "duration"
	URLQueryParamReturnTo  = "return_to"
	URLQueryParamTime      = "time"
)

const (
	FormFieldName      = "name"
	FormFieldEmail     = "email"
	FormFieldPhone     = "phone"
	FormFieldStylistID = "stylist_id"
	FormFieldDate      = "date"
	FormFieldTime      = "time"
	FormFieldDuration  = "duration"
	FormFieldReturnTo  = "return_to"
)
