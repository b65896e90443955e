package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_Transitions(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCancelled))
	assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCompleted))
	assert.False(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusScheduled))
	assert.False(t, AppointmentStatusCancelled.CanTransitionTo(AppointmentStatusScheduled))
	assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusCancelled))
}

func TestAppointmentStatus_Labels(t *testing.T) {
	assert.Equal(t, "Scheduled", AppointmentStatusScheduled.Label())
	assert.Equal(t, "Cancelled", AppointmentStatusCancelled.Label())
	assert.Equal(t, "Unknown", AppointmentStatus("").Label())
	assert.False(t, AppointmentStatus("pending").IsValid())
	assert.True(t, AppointmentStatusCompleted.IsPast())
	assert.False(t, AppointmentStatusScheduled.IsPast())
}

func TestTheme(t *testing.T) {
	theme, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.True(t, theme.IsDark())
	assert.Equal(t, ThemeLight, theme.Toggle())

	theme, ok = ParseTheme("neon")
	assert.False(t, ok)
	assert.Equal(t, ThemeLight, theme)
}
