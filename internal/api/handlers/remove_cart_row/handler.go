package remove_cart_row

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	cartsService "github.com/m04kA/NLS-ScheduleService/internal/service/carts"
)

const (
	msgInvalidCartID = "ID de carrito inválido"
	msgInvalidRowID  = "ID de fila inválido"
	msgCartNotFound  = "carrito no encontrado o expirado"
	msgRowNotFound   = "fila no encontrada"
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

// Handle DELETE /api/v1/carts/{cartId}/rows/{rowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cartID, err := uuid.Parse(vars["cartId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}
	rowID, err := uuid.Parse(vars["rowId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRowID)
		return
	}

	result, err := h.service.RemoveRow(r.Context(), cartID, rowID)
	if err != nil {
		switch {
		case errors.Is(err, cartsService.ErrCartNotFound):
			handlers.RespondNotFound(w, msgCartNotFound)
		case errors.Is(err, cartsService.ErrRowNotFound):
			handlers.RespondNotFound(w, msgRowNotFound)
		default:
			h.logger.Error("DELETE /carts/{id}/rows/{id} - Failed: cart=%s, error=%v", cartID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /carts/{id}/rows/{id} - Row removed: cart=%s, row=%s", cartID, rowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
