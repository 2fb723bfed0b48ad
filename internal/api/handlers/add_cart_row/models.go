package add_cart_row

// Request тело POST /api/v1/carts/{cartId}/rows
type Request struct {
	ServiceID int64 `json:"service_id"`
}
