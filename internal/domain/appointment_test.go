package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	allowed := []struct{ from, to AppointmentStatus }{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}
	for _, tt := range allowed {
		assert.True(t, ValidTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	forbidden := []struct{ from, to AppointmentStatus }{
		{StatusInProgress, StatusPending},
		{StatusCompleted, StatusInProgress},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusCompleted},
	}
	for _, tt := range forbidden {
		assert.False(t, ValidTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTotalDurationMinutes(t *testing.T) {
	appt := &Appointment{Services: []Service{
		{ID: 1, DurationMinutes: 60},
		{ID: 2, DurationMinutes: 30},
	}}
	assert.Equal(t, 90, appt.TotalDurationMinutes())

	// Без данных об услугах берётся минимальная длительность
	empty := &Appointment{}
	assert.Equal(t, FallbackDurationMinutes, empty.TotalDurationMinutes())
}

func TestAppointmentStatusPredicates(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusInProgress} {
		a := &Appointment{Status: status}
		assert.True(t, a.IsActive(), "%s", status)
		assert.True(t, a.CanBeCancelled(), "%s", status)
		assert.False(t, a.IsTerminal(), "%s", status)
	}
	for _, status := range []AppointmentStatus{StatusCompleted, StatusCancelled} {
		a := &Appointment{Status: status}
		assert.False(t, a.IsActive(), "%s", status)
		assert.False(t, a.CanBeCancelled(), "%s", status)
		assert.True(t, a.IsTerminal(), "%s", status)
	}
}
