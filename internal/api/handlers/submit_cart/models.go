package submit_cart

// Request тело POST /api/v1/carts/{cartId}/submit
type Request struct {
	Notes string `json:"notes,omitempty"`
}
