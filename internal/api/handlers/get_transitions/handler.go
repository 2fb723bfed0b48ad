package get_transitions

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
)

const msgInvalidAppointmentID = "ID de cita inválido"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/transitions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.History(r.Context(), appointmentID)
	if err != nil {
		h.logger.Error("GET /appointments/{id}/transitions - Failed: id=%d, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/{id}/transitions - %d transitions for id=%d", result.Total, appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
