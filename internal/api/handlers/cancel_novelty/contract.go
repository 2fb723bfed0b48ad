package cancel_novelty

import "context"

type NoveltiesService interface {
	Cancel(ctx context.Context, noveltyID int64, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
