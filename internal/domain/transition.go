package domain

import "time"

// TransitionTrigger источник перехода статуса
type TransitionTrigger string

const (
	// TriggerAuto переход применён планировщиком
	TriggerAuto TransitionTrigger = "auto"
	// TriggerManual переход применён вручную (отмена администратором)
	TriggerManual TransitionTrigger = "manual"
)

// TransitionRecord запись журнала о применённом переходе статуса.
// Журнал локальный: бэкенд хранит только текущий статус записи,
// история переходов (включая догоняющие после пропущенных тиков)
// восстанавливается отсюда.
type TransitionRecord struct {
	ID            int64
	AppointmentID int64
	FromStatus    AppointmentStatus
	ToStatus      AppointmentStatus
	Trigger       TransitionTrigger
	OccurredAt    time.Time
	CreatedAt     time.Time
}
