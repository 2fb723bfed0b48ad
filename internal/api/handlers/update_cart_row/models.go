package update_cart_row

// Request тело PATCH /api/v1/carts/{cartId}/rows/{rowId}.
// Поля опциональны: назначить можно мастера, время или обоих за один
// запрос; мастер применяется первым.
type Request struct {
	StaffID *int64  `json:"staff_id,omitempty"`
	Start   *string `json:"start,omitempty"`
}
