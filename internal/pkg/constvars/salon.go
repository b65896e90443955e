package constvars

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	AppointmentFilterAll = "all"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	BookingEventBooked      = "appointment.booked"
	BookingEventCancelled   = "appointment.cancelled"
	BookingEventRescheduled = "appointment.rescheduled"
)

const (
	LayoutDate         = "2006-01-02"
	LayoutSlotValue    = "15:04"
	LayoutSlotLabel    = "3:04 PM"
	LayoutDisplayDate  = "Jan 2, 2006"
	LayoutDisplayClock = "3:04 PM"
)

const DefaultAppointmentDurationInMinutes = 60
