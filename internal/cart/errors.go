package cart

import "errors"

var (
	// ErrRowNotFound возвращается, когда строка корзины не найдена
	ErrRowNotFound = errors.New("cart: row not found")

	// ErrStaffNotAssigned возвращается при назначении времени строке без мастера
	ErrStaffNotAssigned = errors.New("cart: staff must be assigned before a start time")

	// ErrStartNotAvailable возвращается, когда время не входит в текущий список доступных
	ErrStartNotAvailable = errors.New("cart: start time is not available for this row")

	// ErrRowIncomplete возвращается при попытке отправить корзину с незаполненной строкой
	ErrRowIncomplete = errors.New("cart: row is missing staff or start time")

	// ErrEmptyCart возвращается при отправке пустой корзины
	ErrEmptyCart = errors.New("cart: no rows to submit")

	// ErrCartNotFound возвращается, когда сессия корзины не найдена или истекла
	ErrCartNotFound = errors.New("cart: session not found")
)
