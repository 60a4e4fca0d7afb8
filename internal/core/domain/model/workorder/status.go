package workorder

import (
	"strings"
	"unicode"

	"fieldroutes/internal/pkg/errs"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind is the closed set of statuses the transition rules distinguish.
type Kind int

const (
	// Other covers any status text the rules do not recognize ("Pendiente", "Asignado", ...).
	// It is stored verbatim and takes part in no special rule.
	Other Kind = iota

	// EnRoute means the technician is travelling to the customer.
	EnRoute

	// Cancelled means the visit was called off. Cancelled orders can be resumed.
	Cancelled

	// Completed is terminal.
	Completed
)

func (k Kind) String() string {
	switch k {
	case EnRoute:
		return "EnRoute"
	case Cancelled:
		return "Cancelled"
	case Completed:
		return "Completed"
	default:
		return "Other"
	}
}

// Canonical texts written to storage for the recognized kinds.
const (
	EnRouteText   = "En camino"
	CancelledText = "Cancelado"
	CompletedText = "Completado"
)

var canonicalByKey = map[string]Kind{
	"en camino":  EnRoute,
	"cancelado":  Cancelled,
	"completado": Completed,
}

// Status is a work order status value object.
//
// Recognized statuses carry their canonical text; unrecognized ones keep the
// trimmed input so they round-trip unchanged.
type Status struct {
	kind Kind
	text string
}

// ParseStatus reads a status as typed by a client or stored by a legacy process.
// Matching ignores case, diacritics and repeated whitespace, so "EN  CAMINO",
// "en camino" and "Cancelado" all resolve to their kinds.
//
// Example:
//
//	status, err := workorder.ParseStatus(" completado ")
//	// status.Kind() == workorder.Completed, status.String() == "Completado"
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Status{}, errs.NewValueIsRequiredError("status")
	}
	return classify(trimmed), nil
}

// RestoreStatus rebuilds a status from a stored column. Empty text yields an empty Other status.
func RestoreStatus(stored string) Status {
	trimmed := strings.TrimSpace(stored)
	if trimmed == "" {
		return Status{kind: Other}
	}
	return classify(trimmed)
}

// NewStatus returns the canonical status for a recognized kind.
// Other has no canonical text; use ParseStatus for it.
func NewStatus(kind Kind) (Status, error) {
	switch kind {
	case EnRoute:
		return Status{kind: EnRoute, text: EnRouteText}, nil
	case Cancelled:
		return Status{kind: Cancelled, text: CancelledText}, nil
	case Completed:
		return Status{kind: Completed, text: CompletedText}, nil
	default:
		return Status{}, errs.NewValueIsInvalidError("status kind")
	}
}

func classify(trimmed string) Status {
	if kind, ok := canonicalByKey[normalizeStatusKey(trimmed)]; ok {
		status, _ := NewStatus(kind)
		return status
	}
	return Status{kind: Other, text: trimmed}
}

// normalizeStatusKey lower-cases, strips combining marks and collapses whitespace.
func normalizeStatusKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Kind reports which rule set applies to the status.
func (s Status) Kind() Kind {
	return s.kind
}

// Is reports whether the status belongs to kind.
func (s Status) Is(kind Kind) bool {
	return s.kind == kind
}

// IsEmpty reports whether the status carries no text at all.
func (s Status) IsEmpty() bool {
	return s.text == ""
}

// IsFrozen reports whether no further transition may change the order.
func (s Status) IsFrozen() bool {
	return s.kind == Completed
}

// String returns the text persisted for the status.
func (s Status) String() string {
	return s.text
}
