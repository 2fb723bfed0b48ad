package discard_cart

import (
	"context"

	"github.com/google/uuid"
)

type CartsService interface {
	Discard(ctx context.Context, cartID uuid.UUID)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
