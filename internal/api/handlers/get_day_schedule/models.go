package get_day_schedule

import (
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	getDaySchedule "github.com/m04kA/NLS-ScheduleService/internal/usecase/get_day_schedule"
)

// Response HTTP ответ с расписанием дня
type Response struct {
	Date     string                         `json:"date"`
	Staff    []getDaySchedule.StaffSchedule `json:"staff"`
	Degraded bool                           `json:"degraded,omitempty"`
}

// FromUseCaseResponse формирует HTTP ответ из ответа use case
func FromUseCaseResponse(result *getDaySchedule.Response) *Response {
	return &Response{
		Date:     result.Date.Format(domain.DateFormat),
		Staff:    result.Staff,
		Degraded: result.Degraded,
	}
}
