package refresh_flags

import "context"

type FlagsStore interface {
	Check(ctx context.Context, topic string) bool
	Clear(ctx context.Context, topic string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
