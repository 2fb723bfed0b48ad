package add_cart_row

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	cartsService "github.com/m04kA/NLS-ScheduleService/internal/service/carts"
)

const (
	msgInvalidBody      = "cuerpo de la solicitud inválido"
	msgInvalidCartID    = "ID de carrito inválido"
	msgInvalidServiceID = "ID de servicio inválido"
	msgCartNotFound     = "carrito no encontrado o expirado"
	msgServiceNotFound  = "servicio no encontrado"
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

// Handle POST /api/v1/carts/{cartId}/rows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cartID, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		h.logger.Warn("POST /carts/{id}/rows - Invalid cart ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/rows - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.ServiceID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.AddRow(r.Context(), cartID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, cartsService.ErrCartNotFound):
			h.logger.Warn("POST /carts/{id}/rows - Cart %s not found", cartID)
			handlers.RespondNotFound(w, msgCartNotFound)

		case errors.Is(err, cartsService.ErrServiceNotFound):
			h.logger.Warn("POST /carts/{id}/rows - Service %d not found", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /carts/{id}/rows - Failed: cart=%s, service=%d, error=%v",
				cartID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carts/{id}/rows - Row added: cart=%s, service=%d", cartID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
