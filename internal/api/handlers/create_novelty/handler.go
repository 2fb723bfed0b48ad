package create_novelty

import (
	"errors"
	"net/http"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	noveltiesService "github.com/m04kA/NLS-ScheduleService/internal/service/novelties"
)

const (
	msgInvalidBody         = "cuerpo de la solicitud inválido"
	msgInvalidStaffID      = "ID de manicurista inválido"
	msgMissingKind         = "el tipo de novedad es obligatorio"
	msgInvalidVacationDays = "los días de vacaciones deben ser múltiplo de 7, máximo 30"
	msgMissingKindFields   = "faltan campos obligatorios para el tipo de novedad"
	msgBackendRejected     = "la novedad fue rechazada por validación"
)

type Handler struct {
	service NoveltiesService
	logger  Logger
}

func NewHandler(service NoveltiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/novelties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /novelties - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.StaffID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}
	if req.Kind == "" {
		handlers.RespondBadRequest(w, msgMissingKind)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /novelties - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, noveltiesService.ErrInvalidVacationDays):
			handlers.RespondBadRequest(w, msgInvalidVacationDays)

		case errors.Is(err, noveltiesService.ErrMissingKindFields):
			handlers.RespondBadRequest(w, msgMissingKindFields)

		case errors.Is(err, noveltiesService.ErrValidation):
			handlers.RespondBadRequest(w, msgBackendRejected)

		default:
			h.logger.Error("POST /novelties - Failed: staff=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /novelties - Novelty %d created for staff=%d (warning=%t)",
		result.ID, req.StaffID, result.Warning != "")
	handlers.RespondJSON(w, http.StatusCreated, result)
}
