package salonapi

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("salonapi client: staff member not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("salonapi client: appointment not found")

	// ErrNoveltyNotFound возвращается, когда новедад не найдена
	ErrNoveltyNotFound = errors.New("salonapi client: novelty not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("salonapi client: service not found")

	// ErrSlotConflict возвращается, когда бэкенд отклонил создание записи из-за
	// занятого слота (слот ушёл между показом и отправкой)
	ErrSlotConflict = errors.New("salonapi client: slot no longer available")

	// ErrValidation возвращается при отклонении запроса бэкендом по валидации
	ErrValidation = errors.New("salonapi client: request rejected by backend validation")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation:
	// источник недоступен, вызывающая сторона получает пустой fallback
	ErrServiceDegraded = errors.New("salonapi unavailable: graceful degradation applied")

	// errNotFound внутренний маркер 404 от getJSON; наружу конвертируется
	// в адресную ошибку конкретного ресурса
	errNotFound = errors.New("salonapi client: resource not found")
)
