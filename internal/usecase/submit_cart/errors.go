package submit_cart

import "errors"

var (
	// ErrCartNotFound возвращается, когда сессия корзины не найдена или истекла
	ErrCartNotFound = errors.New("submit_cart: cart session not found")

	// ErrEmptyCart возвращается при отправке пустой корзины
	ErrEmptyCart = errors.New("submit_cart: cart is empty")

	// ErrRowIncomplete возвращается, когда у строки не назначен мастер
	// или время; ни один запрос на создание при этом не отправляется
	ErrRowIncomplete = errors.New("submit_cart: cart row is incomplete")

	// ErrStartNotAvailable возвращается, когда время группы перестало
	// быть доступным при финальной проверке перед созданием
	ErrStartNotAvailable = errors.New("submit_cart: start time is no longer available")

	// ErrSlotConflict возвращается, когда бэкенд отклонил создание из-за
	// занятого слота
	ErrSlotConflict = errors.New("submit_cart: slot conflict reported by backend")

	// ErrPartialSubmit возвращается, когда часть записей уже создана,
	// а очередное создание не удалось
	ErrPartialSubmit = errors.New("submit_cart: some appointments were created before the failure")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("submit_cart: internal error")
)
