package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthyMessage = "service is healthy"

	CreateStylistSuccessMessage         = "Stylist created successfully! Redirecting..."
	BookAppointmentSuccessMessage       = "Appointment booked successfully! Redirecting..."
	RescheduleAppointmentSuccessMessage = "Appointment rescheduled successfully! Redirecting..."
)

// Slot select placeholders for the booking form.
const (
	SlotPlaceholderSelectFirst = "Select stylist and date first"
	SlotPlaceholderLoading     = "Loading available slots..."
	SlotPlaceholderNone        = "No slots available"
	SlotPlaceholderChoose      = "Select a time slot"
)

const (
	EmptyAppointmentsAll      = "You have no appointments. Book your first appointment now!"
	EmptyAppointmentsFiltered = "No %s appointments found."
	EmptyUpcomingAppointments = "No upcoming appointments scheduled."
	EmptyStylists             = "There are no stylists available at the moment."
)
