package get_day_schedule

import "time"

// Request запрос расписания дня
type Request struct {
	Date time.Time
}

// Slot один слот сетки дня мастера
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// StaffSchedule сетка одного мастера на день
type StaffSchedule struct {
	StaffID   int64  `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Slots     []Slot `json:"slots"`
}

// Response расписание всех активных мастеров на дату.
// Degraded=true означает, что хотя бы один источник дал неполные данные.
type Response struct {
	Date     time.Time
	Staff    []StaffSchedule
	Degraded bool
}
