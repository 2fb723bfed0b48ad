package cancel_appointment

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	appointmentsService "github.com/m04kA/NLS-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidBody          = "cuerpo de la solicitud inválido"
	msgInvalidAppointmentID = "ID de cita inválido"
	msgReasonTooLong        = "el motivo es demasiado largo"
	msgAppointmentNotFound  = "cita no encontrada"
	msgCannotCancel         = "la cita ya está finalizada o cancelada"
)

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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if utf8.RuneCountInString(req.Reason) > domain.MaxCancellationReasonLength {
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	if err := h.service.Cancel(r.Context(), appointmentID, req.Reason); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment %d not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrCannotCancel),
			errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment %d cannot be cancelled", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed: id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment %d cancelled", appointmentID)
	w.WriteHeader(http.StatusNoContent)
}
