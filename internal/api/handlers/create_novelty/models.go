package create_novelty

import (
	"fmt"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	noveltyModels "github.com/m04kA/NLS-ScheduleService/internal/service/novelties/models"
	"github.com/m04kA/NLS-ScheduleService/pkg/types"
)

// Request тело POST /api/v1/novelties.
// Поля, зависящие от типа, опциональны; сервис проверяет их полноту.
type Request struct {
	StaffID int64  `json:"staff_id"`
	Date    string `json:"date"`
	Kind    string `json:"kind"`

	ScheduledEntry *string `json:"scheduled_entry,omitempty"`
	ActualArrival  *string `json:"actual_arrival,omitempty"`
	AbsenceType    *string `json:"absence_type,omitempty"`
	AbsenceStart   *string `json:"absence_start,omitempty"`
	AbsenceEnd     *string `json:"absence_end,omitempty"`
	VacationDays   *int    `json:"vacation_days,omitempty"`
	Shift          *string `json:"shift,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *Request) ToServiceRequest() (*noveltyModels.CreateNoveltyRequest, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	req := &noveltyModels.CreateNoveltyRequest{
		StaffID:      r.StaffID,
		Date:         date,
		Kind:         domain.NoveltyKind(r.Kind),
		VacationDays: r.VacationDays,
		Notes:        r.Notes,
	}

	if req.ScheduledEntry, err = parseOptionalTime(r.ScheduledEntry); err != nil {
		return nil, err
	}
	if req.ActualArrival, err = parseOptionalTime(r.ActualArrival); err != nil {
		return nil, err
	}
	if req.AbsenceStart, err = parseOptionalTime(r.AbsenceStart); err != nil {
		return nil, err
	}
	if req.AbsenceEnd, err = parseOptionalTime(r.AbsenceEnd); err != nil {
		return nil, err
	}

	if r.AbsenceType != nil {
		at := domain.AbsenceType(*r.AbsenceType)
		req.AbsenceType = &at
	}
	if r.Shift != nil {
		shift := domain.Shift(*r.Shift)
		req.Shift = &shift
	}

	return req, nil
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
