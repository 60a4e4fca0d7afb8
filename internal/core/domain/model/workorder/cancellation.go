package workorder

import (
	"strings"

	"fieldroutes/internal/core/domain/model/kernel"
)

// DefaultCancellationReason is recorded when a cancellation carries no comment.
const DefaultCancellationReason = "Sin motivo especificado"

// CancellationRecord is the audit entry written for each cancellation.
type CancellationRecord struct {
	prodID kernel.ID
	reason string
}

// NewCancellationRecord builds an audit entry; a blank reason is replaced by DefaultCancellationReason.
func NewCancellationRecord(prodID kernel.ID, reason string) (CancellationRecord, error) {
	if err := prodID.Validate(); err != nil {
		return CancellationRecord{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancellationReason
	}
	return CancellationRecord{prodID: prodID, reason: reason}, nil
}

func (c CancellationRecord) ProdID() kernel.ID {
	return c.prodID
}

func (c CancellationRecord) Reason() string {
	return c.reason
}
