package get_day_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	getDaySchedule "github.com/m04kA/NLS-ScheduleService/internal/usecase/get_day_schedule"
)

const (
	msgMissingDate = "la fecha es obligatoria"
	msgInvalidDate = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /schedule - Failed: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - %d staff schedules for date=%s", len(result.Staff), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
