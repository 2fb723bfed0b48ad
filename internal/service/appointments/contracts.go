package appointments

import (
	"context"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// SalonAPIClient интерфейс шлюза к бэкенду салона
type SalonAPIClient interface {
	GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus, notes string) error
}

// TransitionJournal интерфейс журнала переходов статусов
type TransitionJournal interface {
	Record(ctx context.Context, rec *domain.TransitionRecord) (*domain.TransitionRecord, error)
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.TransitionRecord, error)
}

// RefreshFlags интерфейс маркеров "данные изменились"
type RefreshFlags interface {
	Set(ctx context.Context, topic string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
