package get_available_starts

import (
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	getAvailableStarts "github.com/m04kA/NLS-ScheduleService/internal/usecase/get_available_starts"
)

// Response HTTP ответ с доступными временами начала
type Response struct {
	StaffID         int64    `json:"staff_id"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"duration_minutes"`
	Starts          []string `json:"starts"`
	Degraded        bool     `json:"degraded,omitempty"`
}

// ToUseCaseRequest формирует запрос use case из параметров HTTP запроса
func ToUseCaseRequest(staffID int64, dateStr string, durationMinutes int) (*getAvailableStarts.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}
	return &getAvailableStarts.Request{
		StaffID:         staffID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse формирует HTTP ответ из ответа use case
func FromUseCaseResponse(result *getAvailableStarts.Response) *Response {
	return &Response{
		StaffID:         result.StaffID,
		Date:            result.Date.Format(domain.DateFormat),
		DurationMinutes: result.DurationMinutes,
		Starts:          result.Starts,
		Degraded:        result.Degraded,
	}
}
