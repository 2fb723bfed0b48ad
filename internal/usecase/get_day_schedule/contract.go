package get_day_schedule

import (
	"context"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// SalonAPIClient интерфейс шлюза к бэкенду салона
type SalonAPIClient interface {
	ListStaffWithFallback(ctx context.Context, estado *string) ([]*domain.StaffMember, bool)
	ListAppointmentsWithFallback(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, bool)
	ListNoveltiesWithFallback(ctx context.Context, staffID *int64, date *time.Time) ([]*domain.Novelty, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
