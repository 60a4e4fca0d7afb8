package kernel

import (
	"errors"
	"fmt"
	"strconv"

	"fieldroutes/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when a zero ID is used where an identity is required.
var ErrIDIsNotConstructed = errors.New("ID must be created via NewID constructor")

// ID is a positive integer identity as used by the legacy relational schema
// (report ids, production ids, technician ids).
//
// The zero value is not a valid identity; Validate rejects it.
type ID int64

// NewID validates that value is positive and returns it as an ID.
//
// Example:
//
//	reportID, err := kernel.NewID(7)
//	if err != nil {
//	    return fmt.Errorf("invalid report id: %w", err)
//	}
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID(value), nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports whether the ID holds a usable identity.
func (id ID) Validate() error {
	if id <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// Int64 returns the raw value for persistence and wire formats.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
