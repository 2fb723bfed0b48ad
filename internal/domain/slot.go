package domain

import "github.com/m04kA/NLS-ScheduleService/pkg/types"

// TimeSlot is a derived (start time, availability) pair on the canonical
// grid. Never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
}

// StaffDaySchedule is the per-staff occupancy view for one date, the data
// behind the calendar screen.
type StaffDaySchedule struct {
	StaffID   int64
	StaffName string
	Slots     []TimeSlot
	// Degraded is set when one of the occupancy sources could not be
	// fetched and was treated as empty.
	Degraded bool
}
