package models

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// CreateNoveltyRequest запрос на создание новедады
type CreateNoveltyRequest struct {
	StaffID int64
	Date    time.Time
	Kind    domain.NoveltyKind

	ScheduledEntry *types.TimeString
	ActualArrival  *types.TimeString
	AbsenceType    *domain.AbsenceType
	AbsenceStart   *types.TimeString
	AbsenceEnd     *types.TimeString
	VacationDays   *int
	Shift          *domain.Shift
	Notes          string
}

// NoveltyResponse ответ с созданной новедадой.
// Warning непустой, когда бэкенд принял запрос, но бизнес-правило
// заблокировало эффект; интерфейс обязан показать его администратору.
type NoveltyResponse struct {
	ID       int64   `json:"id"`
	StaffID  int64   `json:"staff_id"`
	Date     string  `json:"date"`
	EndDate  *string `json:"end_date,omitempty"`
	Kind     string  `json:"kind"`
	Warning  string  `json:"warning,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// FromDomainNovelty конвертирует domain модель в response
func FromDomainNovelty(n *domain.Novelty) *NoveltyResponse {
	resp := &NoveltyResponse{
		ID:      n.ID,
		StaffID: n.StaffID,
		Date:    n.Date.Format(domain.DateFormat),
		Kind:    string(n.Kind),
		Warning: n.Warning,
		Notes:   n.Notes,
	}
	if n.EndDate != nil {
		end := n.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}
	return resp
}
