package workorder

import "time"

// Patch lists the columns one transition writes. Status is always written;
// a nil field leaves the stored value untouched.
type Patch struct {
	Status    Status
	StartedAt *time.Time
	EndedAt   *time.Time
	Comment   *string
	Rating    *int
}
