package carts

import (
	"context"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// SalonAPIClient интерфейс шлюза к бэкенду салона
type SalonAPIClient interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetStaff(ctx context.Context, id int64) (*domain.StaffMember, error)
	ListAppointmentsWithFallback(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, bool)
	ListNoveltiesWithFallback(ctx context.Context, staffID *int64, date *time.Time) ([]*domain.Novelty, bool)
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
