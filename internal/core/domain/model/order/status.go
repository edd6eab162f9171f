package order

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a forward-only
// state machine whose transitions depend on the order's delivery method.
//
// State transitions:
//
//	PendingPayment ──> Preparing ──> Ready ──┬──> ShippingPreparation ──> InTransit
//	                                         │         (postal)
//	                                         └──> PickupReady
//	                                              (pickup, applied automatically)
//
// InTransit and PickupReady are terminal within this service; anything after
// them (delivery confirmation, archival) is another system's concern.
//
// Every fact about a status lives in one lookup table: wire name, localized
// display text, badge color, and the allowed successor per delivery method.
// This keeps the transition rules and the UI labels from drifting apart.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status assigned at checkout.
	// The order waits for an external payment confirmation.
	PendingPayment

	// Preparing means payment is confirmed and the shop is preparing the order.
	Preparing

	// Ready means preparation is complete. Postal orders continue to
	// ShippingPreparation; pickup orders move to PickupReady automatically
	// and are never observed in Ready.
	Ready

	// ShippingPreparation means a postal order is being packed for the carrier.
	ShippingPreparation

	// InTransit means the package was handed to the carrier. Terminal.
	InTransit

	// PickupReady means a pickup order awaits the customer at the shop. Terminal.
	PickupReady
)

// ErrInvalidTransition is the unwrap target of InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError indicates that a requested status change is not an
// edge of the transition graph for the order's delivery method. It is never
// coerced to a "closest valid" transition; callers surface it to the user.
type InvalidTransitionError struct {
	From   Status
	To     Status
	Method DeliveryMethod
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s is not allowed for %s orders",
		e.From, e.To, e.Method)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Display returns the localized, user-visible description of the failure.
func (e *InvalidTransitionError) Display() string {
	return fmt.Sprintf("تغییر وضعیت از «%s» به «%s» امکان‌پذیر نیست", e.From.Display(), e.To.Display())
}

// successor is one outgoing edge of the transition graph. Automatic edges are
// applied by the aggregate immediately after the state they originate from is
// entered, without a separate staff action.
type successor struct {
	to   Status
	auto bool
}

type statusSpec struct {
	name    string
	display string
	color   string
	// next holds the single allowed successor per delivery method.
	// Terminal statuses have no entries.
	next map[DeliveryMethod]successor
}

// getStatusSpecs returns the single source-of-truth table for all valid statuses.
// Display texts are the customer-facing Persian labels; colors are the badge
// colors used by the staff dashboard.
func getStatusSpecs() map[Status]statusSpec {
	return map[Status]statusSpec{
		PendingPayment: {
			name:    "pending_payment",
			display: "در انتظار پرداخت",
			color:   "#ffc107",
			next: map[DeliveryMethod]successor{
				Pickup: {to: Preparing},
				Postal: {to: Preparing},
			},
		},
		Preparing: {
			name:    "preparing",
			display: "در حال آماده‌سازی",
			color:   "#17a2b8",
			next: map[DeliveryMethod]successor{
				Pickup: {to: Ready},
				Postal: {to: Ready},
			},
		},
		Ready: {
			name:    "ready",
			display: "آماده شده",
			color:   "#007bff",
			next: map[DeliveryMethod]successor{
				Pickup: {to: PickupReady, auto: true},
				Postal: {to: ShippingPreparation},
			},
		},
		ShippingPreparation: {
			name:    "shipping_preparation",
			display: "در حال آماده‌سازی ارسال",
			color:   "#6f42c1",
			next: map[DeliveryMethod]successor{
				Postal: {to: InTransit},
			},
		},
		InTransit: {
			name:    "in_transit",
			display: "بسته در حال رسیدن به مقصد است",
			color:   "#fd7e14",
		},
		PickupReady: {
			name:    "pickup_ready",
			display: "آماده شده است و لطفاً مراجعه کنید",
			color:   "#28a745",
		},
	}
}

// StatusFromString parses the wire representation of a status.
//
// Only the six statuses of the live transition graph are accepted. Legacy
// values from earlier revisions of the storefront ("pending", "paid",
// "shipped", "delivered", ...) are a storage migration concern and are
// rejected here.
func StatusFromString(s string) (Status, error) {
	for status, spec := range getStatusSpecs() {
		if spec.name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// TerminalStatuses returns the statuses with no outgoing transitions.
func TerminalStatuses() []Status {
	return []Status{InTransit, PickupReady}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the six members of the transition graph; Unknown (0) and
// any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusSpecs()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status (e.g. "pending_payment"),
// or "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if spec, ok := getStatusSpecs()[s]; ok {
		return spec.name
	}
	return "unknown"
}

// Display returns the localized, customer-facing description of the status.
func (s Status) Display() string {
	if spec, ok := getStatusSpecs()[s]; ok {
		return spec.display
	}
	return "unknown"
}

// Color returns the dashboard badge color for the status. Unrecognized
// statuses get the neutral gray the storefront uses for stale data.
func (s Status) Color() string {
	if spec, ok := getStatusSpecs()[s]; ok {
		return spec.color
	}
	return "#6c757d"
}

// IsTerminal reports whether the status has no outgoing transitions
// within this service.
func (s Status) IsTerminal() bool {
	spec, ok := getStatusSpecs()[s]
	return ok && len(spec.next) == 0
}

// CanTransitionTo reports whether target is the single allowed successor of s
// for the given delivery method. Backward moves, skips, and edges that belong
// to the other delivery branch all return false.
func (s Status) CanTransitionTo(target Status, method DeliveryMethod) bool {
	spec, ok := getStatusSpecs()[s]
	if !ok {
		return false
	}
	next, ok := spec.next[method]
	return ok && next.to == target
}

// TransitionTo returns the new status after moving from s to target.
//
// Returns an InvalidTransitionError if (s, target) is not an edge of the
// transition graph for the given delivery method.
func (s Status) TransitionTo(target Status, method DeliveryMethod) (Status, error) {
	if !s.CanTransitionTo(target, method) {
		return Unknown, &InvalidTransitionError{From: s, To: target, Method: method}
	}
	return target, nil
}

// AutoSuccessor returns the status that must be applied immediately after
// entering s for the given delivery method, if the outgoing edge is automatic.
// The only automatic edge is Ready -> PickupReady for pickup orders.
func (s Status) AutoSuccessor(method DeliveryMethod) (Status, bool) {
	spec, ok := getStatusSpecs()[s]
	if !ok {
		return Unknown, false
	}
	next, ok := spec.next[method]
	if !ok || !next.auto {
		return Unknown, false
	}
	return next.to, true
}
