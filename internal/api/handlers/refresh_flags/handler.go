package refresh_flags

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/NLS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/NLS-ScheduleService/internal/infra/refreshflags"
)

const msgUnknownTopic = "tema de actualización desconocido"

// Response состояние маркера обновления
type Response struct {
	Topic   string `json:"topic"`
	Refresh bool   `json:"refresh"`
}

type Handler struct {
	flags  FlagsStore
	logger Logger
}

func NewHandler(flags FlagsStore, logger Logger) *Handler {
	return &Handler{
		flags:  flags,
		logger: logger,
	}
}

// HandleCheck GET /api/v1/refresh/{topic}
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	if !knownTopic(topic) {
		handlers.RespondBadRequest(w, msgUnknownTopic)
		return
	}

	refresh := h.flags.Check(r.Context(), topic)
	handlers.RespondJSON(w, http.StatusOK, Response{Topic: topic, Refresh: refresh})
}

// HandleClear DELETE /api/v1/refresh/{topic}
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	if !knownTopic(topic) {
		handlers.RespondBadRequest(w, msgUnknownTopic)
		return
	}

	h.flags.Clear(r.Context(), topic)
	w.WriteHeader(http.StatusNoContent)
}

func knownTopic(topic string) bool {
	return topic == refreshflags.TopicAppointments || topic == refreshflags.TopicNovelties
}
