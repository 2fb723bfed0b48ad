package get_cart

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
	msgCartNotFound  = "carrito no encontrado o expirado"
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

// Handle GET /api/v1/carts/{cartId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cartID, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}

	result, err := h.service.Get(r.Context(), cartID)
	if err != nil {
		if errors.Is(err, cartsService.ErrCartNotFound) {
			handlers.RespondNotFound(w, msgCartNotFound)
			return
		}
		h.logger.Error("GET /carts/{id} - Failed: cart=%s, error=%v", cartID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
