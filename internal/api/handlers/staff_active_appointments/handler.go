package staff_active_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
)

const msgInvalidStaffID = "ID de manicurista inválido"

// Response ответ гейта деактивации мастера
type Response struct {
	StaffID               int64 `json:"staff_id"`
	HasActiveAppointments bool  `json:"has_active_appointments"`
}

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

// Handle GET /api/v1/staff/{staffId}/has-active-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	has, err := h.service.HasActiveAppointments(r.Context(), staffID)
	if err != nil {
		h.logger.Error("GET /staff/{id}/has-active-appointments - Failed: staff=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/{id}/has-active-appointments - staff=%d has_active=%t", staffID, has)
	handlers.RespondJSON(w, http.StatusOK, Response{StaffID: staffID, HasActiveAppointments: has})
}
