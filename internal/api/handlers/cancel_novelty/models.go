package cancel_novelty

// Request тело PATCH /api/v1/novelties/{noveltyId}/cancel
type Request struct {
	Reason string `json:"reason"`
}
