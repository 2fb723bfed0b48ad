package domain

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pendiente"
	StatusInProgress AppointmentStatus = "en_proceso"
	StatusCompleted  AppointmentStatus = "finalizada"
	StatusCancelled  AppointmentStatus = "cancelada"
)

// Appointment represents a client visit assigned to one staff member.
// One booking session may produce several appointments, one per staff
// member involved.
type Appointment struct {
	ID         int64
	ClientID   int64
	StaffID    int64
	ServiceIDs []int64
	Date       time.Time
	StartTime  types.TimeString
	Notes      string
	Status     AppointmentStatus

	// Denormalized service data for occupancy computation
	Services []Service

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further status transition is possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// IsActive returns true if the appointment still occupies its slots
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusInProgress
}

// CanBeCancelled returns true if a manual cancellation is allowed
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusInProgress
}

// TotalDurationMinutes returns the occupied duration as the sum of the
// service durations, falling back to the minimum when unknown.
func (a *Appointment) TotalDurationMinutes() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationMinutes
	}
	if total <= 0 {
		return FallbackDurationMinutes
	}
	return total
}

// EndTime returns the time of day at which the appointment ends.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.TotalDurationMinutes())
}

// IsOnDate reports whether the appointment is scheduled on the given calendar day.
func (a *Appointment) IsOnDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ValidTransition reports whether a status change is allowed by the
// state machine: pendiente -> en_proceso -> finalizada, plus manual
// cancellation from any non-terminal state and the skip-ahead
// pendiente -> finalizada used for stale appointments.
func ValidTransition(from, to AppointmentStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusInProgress || to == StatusCompleted || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// AppointmentsFilter filters appointment queries against the backend
type AppointmentsFilter struct {
	StaffID *int64
	Date    *time.Time
	Status  *AppointmentStatus
	// ActiveOnly limits results to pendiente/en_proceso
	ActiveOnly bool
}
