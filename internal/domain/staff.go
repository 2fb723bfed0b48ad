package domain

// StaffMember represents a manicurist. Referenced, never owned, by
// appointments and novelties.
type StaffMember struct {
	ID     int64
	Name   string
	Active bool
}
