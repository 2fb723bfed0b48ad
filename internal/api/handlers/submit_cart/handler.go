package submit_cart

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	submitCart "github.com/m04kA/NLS-ScheduleService/internal/usecase/submit_cart"
)

const (
	msgInvalidBody       = "cuerpo de la solicitud inválido"
	msgInvalidCartID     = "ID de carrito inválido"
	msgCartNotFound      = "carrito no encontrado o expirado"
	msgEmptyCart         = "el carrito está vacío"
	msgRowIncomplete     = "todas las filas deben tener manicurista y hora asignadas"
	msgStartNotAvailable = "una de las horas seleccionadas ya no está disponible"
	msgSlotConflict      = "el horario fue tomado por otra cita, elija otra hora"
	msgPartialSubmit     = "algunas citas fueron creadas antes del error, verifique el calendario"
)

type Handler struct {
	useCase SubmitCartUseCase
	logger  Logger
}

func NewHandler(useCase SubmitCartUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/carts/{cartId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cartID, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCartID)
		return
	}

	// Тело опционально: пустое тело означает отправку без заметок
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /carts/{id}/submit - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitCart.Request{
		CartID: cartID,
		Notes:  req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitCart.ErrCartNotFound):
			h.logger.Warn("POST /carts/{id}/submit - Cart %s not found", cartID)
			handlers.RespondNotFound(w, msgCartNotFound)

		case errors.Is(err, submitCart.ErrEmptyCart):
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, submitCart.ErrRowIncomplete):
			handlers.RespondBadRequest(w, msgRowIncomplete)

		case errors.Is(err, submitCart.ErrStartNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgStartNotAvailable)

		case errors.Is(err, submitCart.ErrSlotConflict):
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, submitCart.ErrPartialSubmit):
			h.logger.Error("POST /carts/{id}/submit - Partial submit: cart=%s, error=%v", cartID, err)
			handlers.RespondError(w, http.StatusConflict, msgPartialSubmit)

		default:
			h.logger.Error("POST /carts/{id}/submit - Failed: cart=%s, error=%v", cartID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carts/{id}/submit - Cart %s submitted, %d appointments created",
		cartID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
