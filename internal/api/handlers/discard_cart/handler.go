package discard_cart

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
)

const msgInvalidCartID = "ID de carrito inválido"

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

// Handle DELETE /api/v1/carts/{cartId}
// Отказ от сессии всегда успешен и не трогает бэкенд.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cartID, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}

	h.service.Discard(r.Context(), cartID)

	h.logger.Info("DELETE /carts/{id} - Cart %s discarded", cartID)
	w.WriteHeader(http.StatusNoContent)
}
