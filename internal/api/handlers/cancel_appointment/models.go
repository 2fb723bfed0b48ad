package cancel_appointment

// Request тело PATCH /api/v1/appointments/{appointmentId}/cancel
type Request struct {
	Reason string `json:"reason,omitempty"`
}
