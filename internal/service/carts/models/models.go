package models

import (
	"github.com/m04kA/NLS-ScheduleService/internal/cart"
	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// RowResponse одна строка корзины
type RowResponse struct {
	ID              string   `json:"id"`
	ServiceID       int64    `json:"service_id"`
	ServiceName     string   `json:"service_name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           float64  `json:"price"`
	StaffID         *int64   `json:"staff_id,omitempty"`
	StaffName       string   `json:"staff_name,omitempty"`
	Start           string   `json:"start,omitempty"`
	AvailableStarts []string `json:"available_starts,omitempty"`
	Complete        bool     `json:"complete"`
}

// CartResponse сессия корзины целиком
type CartResponse struct {
	ID                   string        `json:"id"`
	ClientID             int64         `json:"client_id"`
	Date                 string        `json:"date"`
	Rows                 []RowResponse `json:"rows"`
	TotalDurationMinutes int           `json:"total_duration_minutes"`
}

// AssignResponse строка после назначения мастера или времени.
// Degraded выставляется, когда занятость считалась по неполным данным.
type AssignResponse struct {
	Row      RowResponse `json:"row"`
	Degraded bool        `json:"degraded,omitempty"`
}

// FromCartRow конвертирует строку корзины в response
func FromCartRow(row *cart.Row) RowResponse {
	resp := RowResponse{
		ID:              row.ID.String(),
		ServiceID:       row.Service.ID,
		ServiceName:     row.Service.Name,
		DurationMinutes: row.Service.DurationMinutes,
		Price:           row.Service.Price,
		StaffID:         row.StaffID,
		StaffName:       row.StaffName,
		Complete:        row.Complete(),
	}
	if !row.Start.IsZero() {
		resp.Start = row.Start.String()
	}
	if row.AvailableStarts != nil {
		starts := make([]string, 0, len(row.AvailableStarts))
		for _, s := range row.AvailableStarts {
			starts = append(starts, s.String())
		}
		resp.AvailableStarts = starts
	}
	return resp
}

// FromCart конвертирует корзину в response
func FromCart(c *cart.Cart) *CartResponse {
	rows := make([]RowResponse, 0, len(c.Rows()))
	for _, row := range c.Rows() {
		rows = append(rows, FromCartRow(row))
	}
	return &CartResponse{
		ID:                   c.ID.String(),
		ClientID:             c.ClientID,
		Date:                 c.Date.Format(domain.DateFormat),
		Rows:                 rows,
		TotalDurationMinutes: c.TotalDurationMinutes(),
	}
}
