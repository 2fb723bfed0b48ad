package carts

import "errors"

var (
	// ErrCartNotFound возвращается, когда сессия корзины не найдена
	// или истекла
	ErrCartNotFound = errors.New("carts.service: cart session not found")

	// ErrRowNotFound возвращается, когда строка корзины не найдена
	ErrRowNotFound = errors.New("carts.service: cart row not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("carts.service: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("carts.service: staff member not found")

	// ErrStaffInactive возвращается при попытке назначить неактивного мастера
	ErrStaffInactive = errors.New("carts.service: staff member is inactive")

	// ErrStaffNotAssigned возвращается при назначении времени строке без мастера
	ErrStaffNotAssigned = errors.New("carts.service: staff must be assigned before start time")

	// ErrStartNotAvailable возвращается, когда выбранное время недоступно
	ErrStartNotAvailable = errors.New("carts.service: start time is not available")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("carts.service: date must not be in the past")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("carts.service: internal error")
)
