package get_cart

import (
	"context"

	"github.com/google/uuid"

	cartModels "github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
)

type CartsService interface {
	Get(ctx context.Context, cartID uuid.UUID) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
