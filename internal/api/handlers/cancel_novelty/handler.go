package cancel_novelty

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	noveltiesService "github.com/m04kA/NLS-ScheduleService/internal/service/novelties"
)

const (
	msgInvalidBody      = "cuerpo de la solicitud inválido"
	msgInvalidNoveltyID = "ID de novedad inválido"
	msgReasonRequired   = "el motivo de anulación es obligatorio"
	msgNoveltyNotFound  = "novedad no encontrada"
	msgBackendRejected  = "la anulación fue rechazada por validación"
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

// Handle PATCH /api/v1/novelties/{noveltyId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	noveltyID, err := strconv.ParseInt(mux.Vars(r)["noveltyId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidNoveltyID)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /novelties/{id}/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}

	if err := h.service.Cancel(r.Context(), noveltyID, reason); err != nil {
		switch {
		case errors.Is(err, noveltiesService.ErrNoveltyNotFound):
			h.logger.Warn("PATCH /novelties/{id}/cancel - Novelty %d not found", noveltyID)
			handlers.RespondNotFound(w, msgNoveltyNotFound)

		case errors.Is(err, noveltiesService.ErrReasonRequired):
			handlers.RespondBadRequest(w, msgReasonRequired)

		case errors.Is(err, noveltiesService.ErrValidation):
			handlers.RespondBadRequest(w, msgBackendRejected)

		default:
			h.logger.Error("PATCH /novelties/{id}/cancel - Failed: id=%d, error=%v", noveltyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /novelties/{id}/cancel - Novelty %d cancelled", noveltyID)
	w.WriteHeader(http.StatusNoContent)
}
