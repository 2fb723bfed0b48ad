package create_cart

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	cartsService "github.com/m04kA/NLS-ScheduleService/internal/service/carts"
)

const (
	msgInvalidBody     = "cuerpo de la solicitud inválido"
	msgInvalidClientID = "ID de cliente inválido"
	msgMissingDate     = "la fecha es obligatoria"
	msgInvalidDate     = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgDateInPast      = "la fecha no puede estar en el pasado"
)

type Handler struct {
	service CartsService
	logger  Logger
}

func NewHandler(service CartsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/carts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.ClientID <= 0 {
		h.logger.Warn("POST /carts - Invalid client ID: %d", req.ClientID)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}
	if req.Date == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		h.logger.Warn("POST /carts - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), req.ClientID, date)
	if err != nil {
		if errors.Is(err, cartsService.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgDateInPast)
			return
		}
		h.logger.Error("POST /carts - Failed: client_id=%d, error=%v", req.ClientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /carts - Cart %s created for client_id=%d", result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
