package get_transitions

import (
	"context"

	appointmentModels "github.com/m04kA/NLS-ScheduleService/internal/service/appointments/models"
)

type AppointmentsService interface {
	History(ctx context.Context, appointmentID int64) (*appointmentModels.TransitionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
