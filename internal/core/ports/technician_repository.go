package ports

import (
	"context"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/core/domain/model/technician"
)

// TechnicianRepository defines the persistence contract for technician accounts.
type TechnicianRepository interface {
	Get(ctx context.Context, id kernel.ID) (*technician.Technician, error)

	// Update persists the mutable fields of a technician (the device token).
	Update(ctx context.Context, technician *technician.Technician) error
}
