package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

var (
	futureDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	// now за день до futureDate, буфер не действует
	earlierNow = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
)

func TestAvailableStarts_EmptyDayAllSlots(t *testing.T) {
	starts := AvailableStarts(futureDate, 30, occupancy.SlotSet{}, earlierNow)

	assert.Len(t, starts, 20)
	assert.Equal(t, types.TimeString("10:00"), starts[0])
	assert.Equal(t, types.TimeString("19:30"), starts[19])
}

func TestAvailableStarts_ClosingOverflow(t *testing.T) {
	starts := AvailableStarts(futureDate, 60, occupancy.SlotSet{}, earlierNow)

	// 19:30 + 60 минут вышло бы за 20:00
	assert.NotContains(t, starts, types.TimeString("19:30"))
	assert.Contains(t, starts, types.TimeString("19:00"))
}

func TestAvailableStarts_EverySubSlotMustBeFree(t *testing.T) {
	occupied := occupancy.SlotSet{"14:00": {}, "14:30": {}}

	starts := AvailableStarts(futureDate, 60, occupied, earlierNow)

	// 13:30 захватил бы занятый 14:00, 14:30 сам занят
	assert.NotContains(t, starts, types.TimeString("13:30"))
	assert.NotContains(t, starts, types.TimeString("14:00"))
	assert.NotContains(t, starts, types.TimeString("14:30"))
	assert.Contains(t, starts, types.TimeString("13:00"))
	assert.Contains(t, starts, types.TimeString("15:00"))
}

func TestAvailableStarts_TodayBuffer(t *testing.T) {
	// Сегодня 14:50: 15:00 попадает в буфер 15 минут, 15:30 уже нет
	now := time.Date(2026, 9, 15, 14, 50, 0, 0, time.UTC)

	starts := AvailableStarts(futureDate, 30, occupancy.SlotSet{}, now)

	assert.NotContains(t, starts, types.TimeString("14:30"))
	assert.NotContains(t, starts, types.TimeString("15:00"))
	assert.Contains(t, starts, types.TimeString("15:30"))
}

func TestAvailableStarts_BufferExactBoundary(t *testing.T) {
	// Сегодня 14:45: cutoff ровно 15:00, слот должен быть строго позже
	now := time.Date(2026, 9, 15, 14, 45, 0, 0, time.UTC)

	starts := AvailableStarts(futureDate, 30, occupancy.SlotSet{}, now)

	assert.NotContains(t, starts, types.TimeString("15:00"))
	assert.Contains(t, starts, types.TimeString("15:30"))
}

func TestAvailableStarts_BufferNotAppliedToFutureDates(t *testing.T) {
	now := time.Date(2026, 9, 14, 19, 50, 0, 0, time.UTC)

	starts := AvailableStarts(futureDate, 30, occupancy.SlotSet{}, now)

	assert.Contains(t, starts, types.TimeString("10:00"))
}

func TestAvailableStarts_NonPositiveDurationFallsBack(t *testing.T) {
	occupied := occupancy.SlotSet{"14:00": {}}

	starts := AvailableStarts(futureDate, 0, occupied, earlierNow)

	// Длительность трактуется как минимальные 30 минут
	assert.NotContains(t, starts, types.TimeString("14:00"))
	assert.Contains(t, starts, types.TimeString("13:30"))
	assert.Contains(t, starts, types.TimeString("19:30"))
}

func TestCanStartAt(t *testing.T) {
	occupied := occupancy.SlotSet{"16:00": {}}

	assert.True(t, CanStartAt("15:00", futureDate, 60, occupied, earlierNow))
	assert.False(t, CanStartAt("15:30", futureDate, 60, occupied, earlierNow))
	assert.False(t, CanStartAt("16:00", futureDate, 30, occupied, earlierNow))
	assert.False(t, CanStartAt("19:30", futureDate, 60, occupancy.SlotSet{}, earlierNow))

	now := time.Date(2026, 9, 15, 14, 50, 0, 0, time.UTC)
	assert.False(t, CanStartAt("15:00", futureDate, 30, occupancy.SlotSet{}, now))
	assert.True(t, CanStartAt("15:30", futureDate, 30, occupancy.SlotSet{}, now))
}
