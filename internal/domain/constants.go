package domain

// Business-hours grid. The salon works a fixed 10:00-20:00 day on a
// 30-minute grid; there is no per-staff schedule configuration.
const (
	OpeningMinutes      = 10 * 60 // 10:00
	ClosingMinutes      = 20 * 60 // 20:00
	SlotDurationMinutes = 30

	// BookingBufferMinutes keeps same-day starts out of the immediate past:
	// a start must be at least this far after "now".
	BookingBufferMinutes = 15

	// FallbackDurationMinutes is assumed when an appointment's services
	// carry no duration data.
	FallbackDurationMinutes = 30
)

// Vacation business rules validated before a novelty creation request is
// issued. Days must be a positive multiple of 7; the cap matches the
// admin UI limit.
const (
	VacationDaysStep = 7
	VacationDaysMax  = 30
)

const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых запись занимает слоты
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusInProgress,
}

// TerminalStatuses список финальных статусов, исключаются из расчёта занятости
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
