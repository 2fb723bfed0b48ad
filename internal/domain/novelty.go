package domain

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// NoveltyKind classifies an exception to a staff member's normal availability
type NoveltyKind string

const (
	NoveltyTardiness      NoveltyKind = "tardanza"
	NoveltyAbsence        NoveltyKind = "ausente"
	NoveltyVacation       NoveltyKind = "vacaciones"
	NoveltyMedicalLeave   NoveltyKind = "incapacidad"
	NoveltyScheduleChange NoveltyKind = "horario"
	NoveltyCancelled      NoveltyKind = "anulada"
)

// AbsenceType distinguishes full-day absences from hourly sub-ranges
type AbsenceType string

const (
	AbsenceFullDay AbsenceType = "completa"
	AbsenceHourly  AbsenceType = "por_horas"
)

// Shift is the named shift of a schedule-change novelty
type Shift string

const (
	ShiftOpening Shift = "apertura" // 10:00 - 19:00
	ShiftClosing Shift = "cierre"   // 11:00 - 20:00
)

// Novelty is a recorded exception to a staff member's availability.
// Kind-specific fields are pointers; only the fields of the novelty's
// kind are populated.
type Novelty struct {
	ID      int64
	StaffID int64
	Date    time.Time
	EndDate *time.Time // set for multi-day kinds (vacation, medical leave)
	Kind    NoveltyKind

	// Tardiness: scheduled entry and actual arrival
	ScheduledEntry *types.TimeString
	ActualArrival  *types.TimeString

	// Absence
	AbsenceType  *AbsenceType
	AbsenceStart *types.TimeString
	AbsenceEnd   *types.TimeString

	// Vacation: day count, positive multiple of 7
	VacationDays *int

	// Schedule change
	Shift *Shift

	// Warning carries a business-rule advisory returned by the backend on
	// an otherwise successful creation (e.g. insufficient tenure for
	// vacation). Callers must branch on it even on HTTP success.
	Warning string

	Notes string
}

// OverlapsDate reports whether the novelty is active on the given calendar day.
// Single-day novelties match their date; ranged kinds match any day in
// [Date, EndDate].
func (n *Novelty) OverlapsDate(date time.Time) bool {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	start := time.Date(n.Date.Year(), n.Date.Month(), n.Date.Day(), 0, 0, 0, 0, date.Location())
	end := start
	if n.EndDate != nil {
		end = time.Date(n.EndDate.Year(), n.EndDate.Month(), n.EndDate.Day(), 0, 0, 0, 0, date.Location())
	}

	return !end.Before(dayStart) && start.Before(dayEnd)
}

// BlocksFullDay reports whether the novelty removes the whole business day:
// vacation, medical leave, and full-day absences.
func (n *Novelty) BlocksFullDay() bool {
	switch n.Kind {
	case NoveltyVacation, NoveltyMedicalLeave:
		return true
	case NoveltyAbsence:
		return n.AbsenceType != nil && *n.AbsenceType == AbsenceFullDay
	default:
		return false
	}
}

// HasLostTime reports whether a tardiness novelty actually blocks time:
// the arrival datum must be present and strictly later than the
// scheduled entry.
func (n *Novelty) HasLostTime() bool {
	if n.Kind != NoveltyTardiness || n.ScheduledEntry == nil || n.ActualArrival == nil {
		return false
	}
	return n.ActualArrival.IsAfter(*n.ScheduledEntry)
}
