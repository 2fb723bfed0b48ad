package update_cart_row

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	cartsService "github.com/m04kA/NLS-ScheduleService/internal/service/carts"
	cartModels "github.com/m04kA/NLS-ScheduleService/internal/service/carts/models"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

const (
	msgInvalidBody       = "cuerpo de la solicitud inválido"
	msgInvalidCartID     = "ID de carrito inválido"
	msgInvalidRowID      = "ID de fila inválido"
	msgEmptyUpdate       = "debe indicar manicurista u hora de inicio"
	msgInvalidStart      = "hora de inicio inválida, se espera HH:MM"
	msgCartNotFound      = "carrito no encontrado o expirado"
	msgRowNotFound       = "fila no encontrada"
	msgStaffNotFound     = "manicurista no encontrada"
	msgStaffInactive     = "la manicurista no está activa"
	msgStaffNotAssigned  = "primero debe asignar una manicurista"
	msgStartNotAvailable = "la hora seleccionada ya no está disponible"
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

// Handle PATCH /api/v1/carts/{cartId}/rows/{rowId}
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

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /carts/{id}/rows/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.StaffID == nil && req.Start == nil {
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	var result *cartModels.AssignResponse

	// Мастер назначается первым: от него зависит список доступных времён
	if req.StaffID != nil {
		result, err = h.service.AssignStaff(r.Context(), cartID, rowID, *req.StaffID)
		if err != nil {
			h.respondServiceError(w, cartID, err)
			return
		}
	}

	if req.Start != nil {
		start, parseErr := types.NewTimeStringFromString(*req.Start)
		if parseErr != nil {
			handlers.RespondBadRequest(w, msgInvalidStart)
			return
		}
		result, err = h.service.AssignStart(r.Context(), cartID, rowID, start)
		if err != nil {
			h.respondServiceError(w, cartID, err)
			return
		}
	}

	h.logger.Info("PATCH /carts/{id}/rows/{id} - Row updated: cart=%s, row=%s", cartID, rowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, cartID uuid.UUID, err error) {
	switch {
	case errors.Is(err, cartsService.ErrCartNotFound):
		handlers.RespondNotFound(w, msgCartNotFound)
	case errors.Is(err, cartsService.ErrRowNotFound):
		handlers.RespondNotFound(w, msgRowNotFound)
	case errors.Is(err, cartsService.ErrStaffNotFound):
		handlers.RespondNotFound(w, msgStaffNotFound)
	case errors.Is(err, cartsService.ErrStaffInactive):
		handlers.RespondBadRequest(w, msgStaffInactive)
	case errors.Is(err, cartsService.ErrStaffNotAssigned):
		handlers.RespondBadRequest(w, msgStaffNotAssigned)
	case errors.Is(err, cartsService.ErrStartNotAvailable):
		handlers.RespondError(w, http.StatusConflict, msgStartNotAvailable)
	default:
		h.logger.Error("PATCH /carts/{id}/rows/{id} - Failed: cart=%s, error=%v", cartID, err)
		handlers.RespondInternalError(w)
	}
}
