package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// SalonAPIClient интерфейс шлюза к бэкенду салона
type SalonAPIClient interface {
	ListAppointments(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransitionApplier интерфейс применения переходов статусов
type TransitionApplier interface {
	ApplyTransition(
		ctx context.Context,
		appointment *domain.Appointment,
		to domain.AppointmentStatus,
		trigger domain.TransitionTrigger,
		notes string,
	) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
