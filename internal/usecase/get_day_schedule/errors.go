package get_day_schedule

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_day_schedule: internal error")
)
