package submit_cart

import (
	"errors"
	"fmt"

	"github.com/m04kA/NLS-ScheduleService/internal/cart"
)

// validateCart проверяет корзину перед любым обращением к бэкенду:
// корзина непустая и каждая строка укомплектована мастером и временем
func validateCart(c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			return ErrEmptyCart
		case errors.Is(err, cart.ErrRowIncomplete):
			return fmt.Errorf("%w: %v", ErrRowIncomplete, err)
		default:
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return nil
}
