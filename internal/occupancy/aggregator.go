package occupancy

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/internal/timegrid"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// SlotSet is a set of grid slot start times.
type SlotSet map[types.TimeString]struct{}

// Contains reports whether the slot is in the set.
func (s SlotSet) Contains(slot types.TimeString) bool {
	_, ok := s[slot]
	return ok
}

func (s SlotSet) add(slots []types.TimeString) {
	for _, slot := range slots {
		s[slot] = struct{}{}
	}
}

// OccupiedSlots объединяет занятость из двух независимых источников для
// мастера на дату: действующие записи (pendiente/en_proceso) и новедады.
// Третий источник спецификации — переполнение времени закрытия — живёт в
// Availability Resolver, т.к. зависит от запрашиваемой длительности.
//
// Функция чистая и идемпотентная: одинаковые входы всегда дают одинаковое
// множество. Отказавшие источники должны приходить пустыми срезами
// (деградация решается на уровне gateway), никогда не "всё занято".
func OccupiedSlots(
	staffID int64,
	date time.Time,
	appointments []*domain.Appointment,
	novelties []*domain.Novelty,
) SlotSet {
	occupied := make(SlotSet)

	// 1. Действующие записи мастера на эту дату
	for _, appt := range appointments {
		if appt.StaffID != staffID || !appt.IsActive() || !appt.IsOnDate(date) {
			continue
		}
		slots, err := timegrid.SlotsForDuration(appt.StartTime, appt.TotalDurationMinutes())
		if err != nil {
			// Некорректное время записи — пропускаем, не блокируем весь день
			continue
		}
		occupied.add(slots)
	}

	// 2. Новедады мастера, пересекающие дату
	for _, nov := range novelties {
		if nov.StaffID != staffID || !nov.OverlapsDate(date) {
			continue
		}
		occupied.add(slotsForNovelty(nov))
	}

	return occupied
}

// slotsForNovelty возвращает слоты, блокируемые одной новедадой:
//   - vacaciones, incapacidad, ausencia на весь день — вся сетка;
//   - частичная ausencia — её поддиапазон;
//   - tardanza — потерянное время между плановым и фактическим приходом
//     (ничего, если пришла вовремя или факт прихода не зафиксирован);
//   - horario (смена смены) — ничего: меняется только подпись смены.
//     TODO(product): уточнить, не должна ли смена смены сдвигать сетку,
//     а не оставлять её нетронутой.
func slotsForNovelty(nov *domain.Novelty) []types.TimeString {
	if nov.BlocksFullDay() {
		return timegrid.EnumerateSlots()
	}

	switch nov.Kind {
	case domain.NoveltyAbsence:
		if nov.AbsenceStart == nil || nov.AbsenceEnd == nil {
			return nil
		}
		slots, err := timegrid.SlotsBetween(*nov.AbsenceStart, *nov.AbsenceEnd)
		if err != nil {
			return nil
		}
		return slots

	case domain.NoveltyTardiness:
		if !nov.HasLostTime() {
			return nil
		}
		slots, err := timegrid.SlotsBetween(*nov.ScheduledEntry, *nov.ActualArrival)
		if err != nil {
			return nil
		}
		return slots

	default:
		// horario и anulada не блокируют
		return nil
	}
}
