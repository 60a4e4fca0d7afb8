package workorder

import (
	"errors"
	"strings"
	"time"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder was not built through RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via RestoreWorkOrder constructor")
)

// SkipReason explains why a transition produced no writes.
type SkipReason string

// SkipAlreadyCompleted marks a transition requested on a Completed work order.
const SkipAlreadyCompleted SkipReason = "already_completed"

// WorkOrder is a job assigned to a technician (the legacy "produccion" row).
// Work orders are created by the external assignment process; this model only
// restores them from storage and applies status transitions.
type WorkOrder struct {
	reportID     kernel.ID
	prodID       *kernel.ID
	contractID   string
	technicianID *kernel.ID
	status       Status
	startedAt    *time.Time
	endedAt      *time.Time
	comment      *string
	rating       *int

	isConstructed bool
}

// Snapshot carries the persisted columns of a work order.
type Snapshot struct {
	ReportID     kernel.ID
	ProdID       *kernel.ID
	ContractID   string
	TechnicianID *kernel.ID
	Status       Status
	StartedAt    *time.Time
	EndedAt      *time.Time
	Comment      *string
	Rating       *int
}

// RestoreWorkOrder rebuilds the aggregate from storage.
//
// Example:
//
//	wo, err := workorder.RestoreWorkOrder(workorder.Snapshot{
//	    ReportID: kernel.MustNewID(7),
//	    Status:   workorder.RestoreStatus("Pendiente"),
//	})
func RestoreWorkOrder(s Snapshot) (*WorkOrder, error) {
	var prodErr, techErr error
	if s.ProdID != nil {
		prodErr = s.ProdID.Validate()
	}
	if s.TechnicianID != nil {
		techErr = s.TechnicianID.Validate()
	}
	if err := errors.Join(s.ReportID.Validate(), prodErr, techErr); err != nil {
		return nil, err
	}

	return &WorkOrder{
		reportID:      s.ReportID,
		prodID:        s.ProdID,
		contractID:    s.ContractID,
		technicianID:  s.TechnicianID,
		status:        s.Status,
		startedAt:     s.StartedAt,
		endedAt:       s.EndedAt,
		comment:       s.Comment,
		rating:        s.Rating,
		isConstructed: true,
	}, nil
}

func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

func (w *WorkOrder) ReportID() kernel.ID      { return w.reportID }
func (w *WorkOrder) ProdID() *kernel.ID       { return w.prodID }
func (w *WorkOrder) ContractID() string       { return w.contractID }
func (w *WorkOrder) TechnicianID() *kernel.ID { return w.technicianID }
func (w *WorkOrder) Status() Status           { return w.status }
func (w *WorkOrder) StartedAt() *time.Time    { return w.startedAt }
func (w *WorkOrder) EndedAt() *time.Time      { return w.endedAt }
func (w *WorkOrder) Comment() *string         { return w.comment }
func (w *WorkOrder) Rating() *int             { return w.rating }

// TransitionRequest is a status change requested by a technician.
// Optional timestamps fall back to the transition instant.
type TransitionRequest struct {
	Status    Status
	StartedAt *time.Time
	EndedAt   *time.Time
	Comment   string
	Rating    *int
}

// Outcome is what a transition must persist.
//
// When Skipped is set nothing is written. Otherwise Patch is applied to the
// work order row and, for cancellations, Cancellation is inserted in the same
// transaction.
type Outcome struct {
	Skipped      SkipReason
	Patch        Patch
	Cancellation *CancellationRecord
}

// IsSkipped reports whether the transition requires no writes.
func (o Outcome) IsSkipped() bool {
	return o.Skipped != ""
}

// Transition applies req at instant now and returns the writes it requires.
//
// Rules:
//   - a Completed order is frozen: the outcome is skipped and the aggregate is unchanged
//   - StartedAt is written only when entering EnRoute from another status while still unset
//   - EndedAt is written on every request to Cancelled or Completed, even when already there
//   - a non-blank comment and a rating are written when supplied
//   - a cancellation needs the production id; without it the transition fails with ConsistencyError
//
// The aggregate reflects the patched state after a successful call.
func (w *WorkOrder) Transition(req TransitionRequest, now time.Time) (Outcome, error) {
	if err := w.Validate(); err != nil {
		return Outcome{}, err
	}
	if req.Status.IsEmpty() {
		return Outcome{}, errs.NewValueIsRequiredError("status")
	}

	if w.status.IsFrozen() {
		return Outcome{Skipped: SkipAlreadyCompleted}, nil
	}

	patch := Patch{Status: req.Status}

	if req.Status.Is(EnRoute) && !w.status.Is(EnRoute) && w.startedAt == nil {
		patch.StartedAt = pick(req.StartedAt, now)
	}

	if req.Status.Is(Cancelled) || req.Status.Is(Completed) {
		patch.EndedAt = pick(req.EndedAt, now)
	}

	comment := strings.TrimSpace(req.Comment)
	if comment != "" {
		patch.Comment = &comment
	}
	if req.Rating != nil {
		rating := *req.Rating
		patch.Rating = &rating
	}

	var cancellation *CancellationRecord
	if req.Status.Is(Cancelled) {
		if w.prodID == nil {
			return Outcome{}, errs.NewConsistencyError("work order " + w.reportID.String() + " has no prod id")
		}
		record, err := NewCancellationRecord(*w.prodID, comment)
		if err != nil {
			return Outcome{}, errs.NewConsistencyErrorWithCause("cancellation record", err)
		}
		cancellation = &record
	}

	w.apply(patch)

	return Outcome{Patch: patch, Cancellation: cancellation}, nil
}

func (w *WorkOrder) apply(p Patch) {
	w.status = p.Status
	if p.StartedAt != nil {
		w.startedAt = p.StartedAt
	}
	if p.EndedAt != nil {
		w.endedAt = p.EndedAt
	}
	if p.Comment != nil {
		w.comment = p.Comment
	}
	if p.Rating != nil {
		w.rating = p.Rating
	}
}

func pick(supplied *time.Time, now time.Time) *time.Time {
	if supplied != nil {
		t := *supplied
		return &t
	}
	return &now
}
