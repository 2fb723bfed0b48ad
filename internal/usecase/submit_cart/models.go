package submit_cart

import (
	"github.com/google/uuid"
)

// Request запрос на отправку корзины.
// Клиент берется из самой сессии корзины.
type Request struct {
	CartID uuid.UUID
	Notes  string
}

// CreatedAppointment одна созданная запись (по одной на мастера)
type CreatedAppointment struct {
	ID         int64   `json:"id"`
	StaffID    int64   `json:"staff_id"`
	Date       string  `json:"date"`
	Start      string  `json:"start"`
	ServiceIDs []int64 `json:"service_ids"`
	Status     string  `json:"status"`
}

// Response результат отправки корзины
type Response struct {
	Appointments []CreatedAppointment `json:"appointments"`
}
