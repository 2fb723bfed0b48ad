package staff_active_appointments

import "context"

type NoveltiesService interface {
	HasActiveAppointments(ctx context.Context, staffID int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
