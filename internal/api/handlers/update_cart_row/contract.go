package update_cart_row

import (
	"context"

	"github.com/google/uuid"

	cartModels "github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

type CartsService interface {
	AssignStaff(ctx context.Context, cartID, rowID uuid.UUID, staffID int64) (*cartModels.AssignResponse, error)
	AssignStart(ctx context.Context, cartID, rowID uuid.UUID, start types.TimeString) (*cartModels.AssignResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
