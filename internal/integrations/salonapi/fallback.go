package salonapi

import (
	"context"
	"time"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
)

// Fallback-обёртки для источников занятости. Если бэкенд недоступен,
// источник деградирует до пустого списка: отсутствие данных трактуется
// как отсутствие блокировок, но вызывающая сторона получает признак
// degraded и обязана пометить ответ. Деградировавший источник никогда
// не блокирует весь день.

// ListAppointmentsWithFallback возвращает записи или пустой список при
// недоступности бэкенда. Второй результат — признак деградации.
func (c *Client) ListAppointmentsWithFallback(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, bool) {
	appointments, err := c.ListAppointments(ctx, filter)
	if err != nil {
		c.log.Error("ListAppointmentsWithFallback: degraded to empty list: %v", err)
		return []*domain.Appointment{}, true
	}
	return appointments, false
}

// ListNoveltiesWithFallback возвращает новедады или пустой список при
// недоступности бэкенда. Второй результат — признак деградации.
func (c *Client) ListNoveltiesWithFallback(ctx context.Context, staffID *int64, date *time.Time) ([]*domain.Novelty, bool) {
	novelties, err := c.ListNovelties(ctx, staffID, date)
	if err != nil {
		c.log.Error("ListNoveltiesWithFallback: degraded to empty list: %v", err)
		return []*domain.Novelty{}, true
	}
	return novelties, false
}

// ListStaffWithFallback возвращает мастеров или пустой список при
// недоступности бэкенда. Второй результат — признак деградации.
func (c *Client) ListStaffWithFallback(ctx context.Context, estado *string) ([]*domain.StaffMember, bool) {
	staff, err := c.ListStaff(ctx, estado)
	if err != nil {
		c.log.Error("ListStaffWithFallback: degraded to empty list: %v", err)
		return []*domain.StaffMember{}, true
	}
	return staff, false
}
