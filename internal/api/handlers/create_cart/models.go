package create_cart

// Request тело POST /api/v1/carts
type Request struct {
	ClientID int64  `json:"client_id"`
	Date     string `json:"date"`
}
