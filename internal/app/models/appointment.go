package models

import (
	"cosmek-web/internal/pkg/constvars"
	"strings"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = constvars.AppointmentStatusScheduled
	AppointmentStatusCompleted AppointmentStatus = constvars.AppointmentStatusCompleted
	AppointmentStatusCancelled AppointmentStatus = constvars.AppointmentStatusCancelled
)

var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

func (s AppointmentStatus) IsValid() bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Label is the capitalised status, "Unknown" for values outside the enumeration.
func (s AppointmentStatus) Label() string {
	if !s.IsValid() {
		return "Unknown"
	}
	value := string(s)
	return strings.ToUpper(value[:1]) + value[1:]
}

// CanTransitionTo reports whether the backend would accept moving an
// appointment from s to next. Only scheduled appointments move, and only to
// cancelled or completed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentStatusScheduled {
		return false
	}
	return next == AppointmentStatusCancelled || next == AppointmentStatusCompleted
}

// IsActive reports whether the appointment can still be cancelled or
// rescheduled.
func (s AppointmentStatus) IsActive() bool {
	return s == AppointmentStatusScheduled
}

// IsPast groups completed and cancelled appointments together.
func (s AppointmentStatus) IsPast() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}
