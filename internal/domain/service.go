package domain

// Service is immutable reference data describing a bookable service.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}
