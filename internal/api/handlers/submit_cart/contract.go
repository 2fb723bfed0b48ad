package submit_cart

import (
	"context"

	submitCart "github.com/m04kA/NLS-ScheduleService/internal/usecase/submit_cart"
)

type SubmitCartUseCase interface {
	Execute(ctx context.Context, req *submitCart.Request) (*submitCart.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
