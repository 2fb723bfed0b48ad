package create_cart

import (
	"context"
	"time"

	cartModels "github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
)

type CartsService interface {
	Create(ctx context.Context, clientID int64, date time.Time) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
