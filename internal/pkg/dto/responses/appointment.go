package responses

type Appointment struct {
	ID       int      `json:"id"`
	Time     string   `json:"time"`
	Duration int      `json:"duration"`
	Status   string   `json:"status"`
	Customer Customer `json:"customer"`
	Stylist  Stylist  `json:"stylist"`
}

type CancelAppointment struct {
	Message string `json:"message"`
}

// AppointmentCard is an appointment with its display strings resolved in the
// salon timezone.
type AppointmentCard struct {
	Appointment
	StatusLabel string
	DisplayDate string
	DisplayTime string
	Active      bool
}

type AppointmentFilter struct {
	Value  string
	Label  string
	Active bool
}

type AppointmentList struct {
	Filter       string
	Filters      []AppointmentFilter
	Appointments []AppointmentCard
	EmptyMessage string
	ShowBookCTA  bool
}
