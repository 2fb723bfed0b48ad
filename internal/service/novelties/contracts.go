package novelties

import (
	"context"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	salonClient "github.com/m04kA/NLS-ScheduleService/internal/integrations/salonapi"
)

// SalonAPIClient интерфейс шлюза к бэкенду салона
type SalonAPIClient interface {
	CreateNovelty(ctx context.Context, req *salonClient.CreateNoveltyRequest) (*domain.Novelty, error)
	CancelNovelty(ctx context.Context, id int64, reason string) error
	HasActiveAppointments(ctx context.Context, staffID int64) (bool, error)
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
