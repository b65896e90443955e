package responses

type Stylist struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Availability struct {
	AvailableSlots []string `json:"available_slots"`
}

// StylistProfile is a stylist with their appointments split by status.
type StylistProfile struct {
	Stylist  Stylist
	Upcoming []AppointmentCard
	Past     []AppointmentCard
}
