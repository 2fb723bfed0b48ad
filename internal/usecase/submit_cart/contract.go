package submit_cart

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/NLS-ScheduleService/internal/cart"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
)

// SalonAPIClient интерфейс шлюза к бэкенду салона
type SalonAPIClient interface {
	ListAppointmentsWithFallback(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, bool)
	ListNoveltiesWithFallback(ctx context.Context, staffID *int64, date *time.Time) ([]*domain.Novelty, bool)
	CreateAppointment(ctx context.Context, req *salonClient.CreateAppointmentRequest) (*domain.Appointment, error)
}

// CartStore интерфейс хранилища сессий корзин
type CartStore interface {
	Get(id uuid.UUID) (*cart.Cart, error)
	Discard(id uuid.UUID)
}

// RefreshFlags интерфейс маркеров "данные изменились"
type RefreshFlags interface {
	Set(ctx context.Context, topic string)
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
