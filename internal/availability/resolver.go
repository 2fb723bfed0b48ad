package availability

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/occupancy"
	"github.com/m04kA/NLS-ScheduleService/internal/timegrid"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// AvailableStarts возвращает упорядоченный список времён, с которых запись
// длительностью durationMinutes может начаться у мастера на дату date при
// занятости occupied.
//
// Слот-кандидат s отклоняется, если:
//   - date сегодня и s не строго позже now + 15 минут (буфер от прошлого);
//   - запись с началом в s вышла бы за время закрытия;
//   - хотя бы один слот из SlotsForDuration(s, durationMinutes) занят.
//
// Ключевое свойство корректности: свободен должен быть КАЖДЫЙ слот,
// который займёт длительность, а не только стартовый.
func AvailableStarts(
	date time.Time,
	durationMinutes int,
	occupied occupancy.SlotSet,
	now time.Time,
) []types.TimeString {
	if durationMinutes <= 0 {
		durationMinutes = domain.FallbackDurationMinutes
	}

	var cutoff types.TimeString
	isToday := sameDay(date, now)
	if isToday {
		cutoff = types.NewTimeString(now.Add(domain.BookingBufferMinutes * time.Minute))
	}

	available := make([]types.TimeString, 0)
	for _, start := range timegrid.EnumerateSlots() {
		if isToday && !start.IsAfter(cutoff) {
			continue
		}
		if !timegrid.FitsWithinDay(start, durationMinutes) {
			continue
		}
		if !durationFits(start, durationMinutes, occupied) {
			continue
		}
		available = append(available, start)
	}
	return available
}

// CanStartAt проверяет единственный слот-кандидат по тем же правилам.
func CanStartAt(
	start types.TimeString,
	date time.Time,
	durationMinutes int,
	occupied occupancy.SlotSet,
	now time.Time,
) bool {
	if durationMinutes <= 0 {
		durationMinutes = domain.FallbackDurationMinutes
	}
	if sameDay(date, now) {
		cutoff := types.NewTimeString(now.Add(domain.BookingBufferMinutes * time.Minute))
		if !start.IsAfter(cutoff) {
			return false
		}
	}
	if !timegrid.FitsWithinDay(start, durationMinutes) {
		return false
	}
	return durationFits(start, durationMinutes, occupied)
}

func durationFits(start types.TimeString, durationMinutes int, occupied occupancy.SlotSet) bool {
	required, err := timegrid.SlotsForDuration(start, durationMinutes)
	if err != nil {
		return false
	}
	for _, slot := range required {
		if occupied.Contains(slot) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
