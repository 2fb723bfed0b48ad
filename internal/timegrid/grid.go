package timegrid

import (
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// EnumerateSlots возвращает все слоты рабочего дня по порядку:
// 10:00, 10:30, ... 19:30. Детерминированно, без побочных эффектов.
func EnumerateSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, (domain.ClosingMinutes-domain.OpeningMinutes)/domain.SlotDurationMinutes)
	for m := domain.OpeningMinutes; m < domain.ClosingMinutes; m += domain.SlotDurationMinutes {
		slots = append(slots, types.FromMinutes(m))
	}
	return slots
}

// SlotsForDuration возвращает последовательность слотов, которые займёт
// запись длительностью durationMinutes начиная со start: стартовый слот
// плюс каждый последующий, пока длительность не исчерпана. Используется
// и для пометки занятости, и для проверки "влезает ли".
func SlotsForDuration(start types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return nil, err
	}

	endMin := startMin + durationMinutes
	slots := make([]types.TimeString, 0, durationMinutes/domain.SlotDurationMinutes+1)
	for m := startMin; m < endMin; m += domain.SlotDurationMinutes {
		slots = append(slots, types.FromMinutes(m))
	}
	return slots, nil
}

// SlotsBetween возвращает все 30-минутные слоты в полуинтервале [from, to).
// Используется для блокировок по диапазону (частичная ausencia, tardanza).
func SlotsBetween(from, to types.TimeString) ([]types.TimeString, error) {
	fromMin, err := from.Minutes()
	if err != nil {
		return nil, err
	}
	toMin, err := to.Minutes()
	if err != nil {
		return nil, err
	}

	var slots []types.TimeString
	for m := fromMin; m < toMin; m += domain.SlotDurationMinutes {
		slots = append(slots, types.FromMinutes(m))
	}
	return slots, nil
}

// FitsWithinDay проверяет, что запись длительностью durationMinutes,
// начатая в start, закончится не позже закрытия.
func FitsWithinDay(start types.TimeString, durationMinutes int) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	return startMin+durationMinutes <= domain.ClosingMinutes
}

// ClosingTime возвращает время закрытия.
func ClosingTime() types.TimeString {
	return types.FromMinutes(domain.ClosingMinutes)
}

// OpeningTime возвращает время открытия.
func OpeningTime() types.TimeString {
	return types.FromMinutes(domain.OpeningMinutes)
}
