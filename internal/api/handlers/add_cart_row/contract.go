package add_cart_row

import (
	"context"

	"github.com/google/uuid"

	cartModels "github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
)

type CartsService interface {
	AddRow(ctx context.Context, cartID uuid.UUID, serviceID int64) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
