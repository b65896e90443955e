package models

import "time"

// BookingEvent is published whenever a booking changes state.
type BookingEvent struct {
	Type          string    `json:"type"`
	AppointmentID int       `json:"appointment_id"`
	StylistID     int       `json:"stylist_id"`
	StylistName   string    `json:"stylist_name,omitempty"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Time          string    `json:"time,omitempty"`
	Duration      int       `json:"duration,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
