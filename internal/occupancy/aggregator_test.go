package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/ptr"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func appointment(staffID int64, start types.TimeString, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        1,
		StaffID:   staffID,
		Date:      testDate,
		StartTime: start,
		Status:    status,
		Services: []domain.Service{
			{ID: 1, DurationMinutes: durationMinutes},
		},
	}
}

func TestOccupiedSlots_ActiveAppointments(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment(7, "14:00", 60, domain.StatusPending),
	}

	occupied := OccupiedSlots(7, testDate, appointments, nil)

	assert.True(t, occupied.Contains("14:00"))
	assert.True(t, occupied.Contains("14:30"))
	assert.False(t, occupied.Contains("15:00"))
	assert.False(t, occupied.Contains("13:30"))
}

func TestOccupiedSlots_TerminalStatusesIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment(7, "14:00", 60, domain.StatusCancelled),
		appointment(7, "16:00", 60, domain.StatusCompleted),
	}

	occupied := OccupiedSlots(7, testDate, appointments, nil)

	assert.Empty(t, occupied)
}

func TestOccupiedSlots_OtherStaffIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment(8, "14:00", 60, domain.StatusPending),
	}

	occupied := OccupiedSlots(7, testDate, appointments, nil)

	assert.Empty(t, occupied)
}

func TestOccupiedSlots_OtherDateIgnored(t *testing.T) {
	appt := appointment(7, "14:00", 60, domain.StatusPending)
	appt.Date = testDate.AddDate(0, 0, 1)

	occupied := OccupiedSlots(7, testDate, []*domain.Appointment{appt}, nil)

	assert.Empty(t, occupied)
}

func TestOccupiedSlots_FullDayNovelty(t *testing.T) {
	tests := []struct {
		name    string
		novelty *domain.Novelty
	}{
		{
			name: "vacaciones",
			novelty: &domain.Novelty{
				StaffID: 7,
				Date:    testDate,
				Kind:    domain.NoveltyVacation,
			},
		},
		{
			name: "incapacidad",
			novelty: &domain.Novelty{
				StaffID: 7,
				Date:    testDate,
				Kind:    domain.NoveltyMedicalLeave,
			},
		},
		{
			name: "ausencia completa",
			novelty: &domain.Novelty{
				StaffID:     7,
				Date:        testDate,
				Kind:        domain.NoveltyAbsence,
				AbsenceType: ptr.Ptr(domain.AbsenceFullDay),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupied := OccupiedSlots(7, testDate, nil, []*domain.Novelty{tt.novelty})

			require.Len(t, occupied, 20)
			assert.True(t, occupied.Contains("10:00"))
			assert.True(t, occupied.Contains("19:30"))
		})
	}
}

func TestOccupiedSlots_HourlyAbsence(t *testing.T) {
	nov := &domain.Novelty{
		StaffID:      7,
		Date:         testDate,
		Kind:         domain.NoveltyAbsence,
		AbsenceType:  ptr.Ptr(domain.AbsenceHourly),
		AbsenceStart: ptr.Ptr(types.TimeString("12:00")),
		AbsenceEnd:   ptr.Ptr(types.TimeString("14:00")),
	}

	occupied := OccupiedSlots(7, testDate, nil, []*domain.Novelty{nov})

	assert.Equal(t, SlotSet{
		"12:00": {}, "12:30": {}, "13:00": {}, "13:30": {},
	}, occupied)
}

func TestOccupiedSlots_Tardiness(t *testing.T) {
	t.Run("late arrival blocks the lost range", func(t *testing.T) {
		nov := &domain.Novelty{
			StaffID:        7,
			Date:           testDate,
			Kind:           domain.NoveltyTardiness,
			ScheduledEntry: ptr.Ptr(types.TimeString("10:00")),
			ActualArrival:  ptr.Ptr(types.TimeString("11:00")),
		}

		occupied := OccupiedSlots(7, testDate, nil, []*domain.Novelty{nov})

		assert.Equal(t, SlotSet{"10:00": {}, "10:30": {}}, occupied)
	})

	t.Run("on-time arrival blocks nothing", func(t *testing.T) {
		nov := &domain.Novelty{
			StaffID:        7,
			Date:           testDate,
			Kind:           domain.NoveltyTardiness,
			ScheduledEntry: ptr.Ptr(types.TimeString("10:00")),
			ActualArrival:  ptr.Ptr(types.TimeString("10:00")),
		}

		assert.Empty(t, OccupiedSlots(7, testDate, nil, []*domain.Novelty{nov}))
	})

	t.Run("unrecorded arrival blocks nothing", func(t *testing.T) {
		nov := &domain.Novelty{
			StaffID:        7,
			Date:           testDate,
			Kind:           domain.NoveltyTardiness,
			ScheduledEntry: ptr.Ptr(types.TimeString("10:00")),
		}

		assert.Empty(t, OccupiedSlots(7, testDate, nil, []*domain.Novelty{nov}))
	})
}

func TestOccupiedSlots_ScheduleChangeBlocksNothing(t *testing.T) {
	nov := &domain.Novelty{
		StaffID: 7,
		Date:    testDate,
		Kind:    domain.NoveltyScheduleChange,
		Shift:   ptr.Ptr(domain.ShiftClosing),
	}

	assert.Empty(t, OccupiedSlots(7, testDate, nil, []*domain.Novelty{nov}))
}

func TestOccupiedSlots_MultiDayVacationCoversInnerDay(t *testing.T) {
	end := testDate.AddDate(0, 0, 6)
	nov := &domain.Novelty{
		StaffID: 7,
		Date:    testDate,
		EndDate: &end,
		Kind:    domain.NoveltyVacation,
	}

	middle := testDate.AddDate(0, 0, 3)
	occupied := OccupiedSlots(7, middle, nil, []*domain.Novelty{nov})
	assert.Len(t, occupied, 20)

	after := testDate.AddDate(0, 0, 7)
	assert.Empty(t, OccupiedSlots(7, after, nil, []*domain.Novelty{nov}))
}

func TestOccupiedSlots_DegradedSourcesGiveEmptySet(t *testing.T) {
	// Отказ источника означает пустой срез на входе, а не "всё занято"
	occupied := OccupiedSlots(7, testDate, []*domain.Appointment{}, []*domain.Novelty{})

	assert.Empty(t, occupied)
}

func TestOccupiedSlots_UnionOfSources(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment(7, "10:00", 30, domain.StatusInProgress),
	}
	novelties := []*domain.Novelty{
		{
			StaffID:      7,
			Date:         testDate,
			Kind:         domain.NoveltyAbsence,
			AbsenceType:  ptr.Ptr(domain.AbsenceHourly),
			AbsenceStart: ptr.Ptr(types.TimeString("10:00")),
			AbsenceEnd:   ptr.Ptr(types.TimeString("11:00")),
		},
	}

	occupied := OccupiedSlots(7, testDate, appointments, novelties)

	assert.Equal(t, SlotSet{"10:00": {}, "10:30": {}}, occupied)
}
