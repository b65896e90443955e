package requests

type CreateAppointment struct {
	Time       string `json:"time" validate:"required"`
	Duration   int    `json:"duration" validate:"required,gt=0"`
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	StylistID  int    `json:"stylist_id" validate:"required,gt=0"`
	Status     string `json:"status,omitempty" validate:"omitempty,appointment_state"`
}

type RescheduleAppointment struct {
	NewTime string `json:"new_time" validate:"required"`
}

// BookAppointment is the booking form as submitted by the visitor.
type BookAppointment struct {
	Name      string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required,phone_number"`
	StylistID int    `validate:"required,gt=0"`
	Date      string `validate:"required,datetime=2006-01-02,not_past_date"`
	Time      string `validate:"required,datetime=15:04"`
	Duration  int    `validate:"required,gt=0"`
}

// RescheduleAppointmentForm is the reschedule form as submitted by the visitor.
type RescheduleAppointmentForm struct {
	Date string `validate:"required,datetime=2006-01-02,not_past_date"`
	Time string `validate:"required,datetime=15:04"`
}

type AppointmentListQuery struct {
	Status string
}

// BookingFormQuery carries the selections that drive the availability fetch.
// Zero values mean "not selected yet".
type BookingFormQuery struct {
	StylistID int
	Date      string
	Duration  int
}
