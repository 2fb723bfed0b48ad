package models

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// TransitionResponse ответ с одним переходом статуса из журнала
type TransitionResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointment_id"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	Trigger       string    `json:"trigger"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// TransitionListResponse ответ со списком переходов
type TransitionListResponse struct {
	Transitions []TransitionResponse `json:"transitions"`
	Total       int                  `json:"total"`
}

// FromDomainTransition конвертирует domain модель в response
func FromDomainTransition(rec *domain.TransitionRecord) TransitionResponse {
	return TransitionResponse{
		ID:            rec.ID,
		AppointmentID: rec.AppointmentID,
		FromStatus:    string(rec.FromStatus),
		ToStatus:      string(rec.ToStatus),
		Trigger:       string(rec.Trigger),
		OccurredAt:    rec.OccurredAt,
	}
}

// FromDomainTransitionList конвертирует список переходов в response
func FromDomainTransitionList(records []*domain.TransitionRecord) *TransitionListResponse {
	transitions := make([]TransitionResponse, 0, len(records))
	for _, rec := range records {
		transitions = append(transitions, FromDomainTransition(rec))
	}
	return &TransitionListResponse{
		Transitions: transitions,
		Total:       len(transitions),
	}
}
