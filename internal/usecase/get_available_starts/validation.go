package get_available_starts

import "time"

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.DurationMinutes < 0 {
		return ErrInvalidDuration
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.Date.Before(today) {
		return ErrDateInPast
	}

	return nil
}
