package get_available_starts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	getAvailableStarts "github.com/m04kA/NLS-ScheduleService/internal/usecase/get_available_starts"
)

const (
	msgInvalidStaffID   = "ID de manicurista inválido"
	msgMissingDate      = "la fecha es obligatoria"
	msgInvalidDate      = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidDuration  = "duración inválida"
	msgStaffNotFound    = "manicurista no encontrada"
	msgStaffInactive    = "la manicurista no está activa"
	msgDateInPast       = "la fecha no puede estar en el pasado"
	msgNegativeDuration = "la duración no puede ser negativa"
)

type Handler struct {
	useCase GetAvailableStartsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStartsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/available-starts
// Query params: date (required, YYYY-MM-DD), duration (minutes, optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-starts - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /staff/{id}/available-starts - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Длительность опциональна: 0 означает "неизвестна", резолвер
	// подставит минимальную
	durationMinutes := 0
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/available-starts - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(staffID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-starts - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStarts.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/available-starts - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableStarts.ErrStaffInactive):
			h.logger.Warn("GET /staff/{id}/available-starts - Staff inactive: staff_id=%d", staffID)
			handlers.RespondBadRequest(w, msgStaffInactive)

		case errors.Is(err, getAvailableStarts.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableStarts.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgNegativeDuration)

		default:
			h.logger.Error("GET /staff/{id}/available-starts - Failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/available-starts - %d starts for staff_id=%d date=%s",
		len(result.Starts), staffID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
