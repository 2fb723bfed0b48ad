package remove_cart_row

import (
	"context"

	"github.com/google/uuid"

	cartModels "github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
)

type CartsService interface {
	RemoveRow(ctx context.Context, cartID, rowID uuid.UUID) (*cartModels.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
