package get_available_starts

import "time"

// Request запрос доступных времён начала
type Request struct {
	StaffID int64
	Date    time.Time
	// DurationMinutes суммарная длительность услуг; 0 означает
	// "длительность неизвестна" и заменяется минимальной
	DurationMinutes int
}

// Response доступные времена начала.
// Degraded=true означает, что занятость считалась по неполным данным
// (источник был недоступен и дал пустой вклад).
type Response struct {
	StaffID         int64
	Date            time.Time
	DurationMinutes int
	Starts          []string
	Degraded        bool
}
