package novelties

import "errors"

var (
	// ErrNoveltyNotFound возвращается, когда новедад не найдена
	ErrNoveltyNotFound = errors.New("novelties.service: novelty not found")

	// ErrInvalidVacationDays возвращается, когда количество дней отпуска
	// не положительное кратное 7 или больше 30
	ErrInvalidVacationDays = errors.New("novelties.service: vacation days must be a positive multiple of 7, at most 30")

	// ErrMissingKindFields возвращается, когда не заполнены поля,
	// обязательные для выбранного типа новедады
	ErrMissingKindFields = errors.New("novelties.service: required fields for novelty kind are missing")

	// ErrReasonRequired возвращается при аннулировании без причины
	ErrReasonRequired = errors.New("novelties.service: cancellation reason is required")

	// ErrValidation возвращается при отклонении запроса бэкендом
	ErrValidation = errors.New("novelties.service: rejected by backend validation")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("novelties.service: internal error")
)
