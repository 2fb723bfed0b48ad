package get_available_starts

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("get_available_starts: staff member not found")

	// ErrStaffInactive возвращается для неактивного мастера
	ErrStaffInactive = errors.New("get_available_starts: staff member is inactive")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("get_available_starts: date must not be in the past")

	// ErrInvalidDuration возвращается для отрицательной длительности
	ErrInvalidDuration = errors.New("get_available_starts: duration must not be negative")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_starts: internal error")
)
