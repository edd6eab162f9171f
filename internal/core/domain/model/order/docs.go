// Package order provides domain entities and business logic for the coffee-shop
// order lifecycle. It implements the Order aggregate root with a delivery-method
// aware status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, and lifecycle
//   - Status: A forward-only state machine gating order workflow steps
//   - DeliveryMethod: pickup vs. postal, selecting the branch of the graph after Ready
//
// Key business rules:
//   - Orders are created in PendingPayment and move strictly forward:
//     PendingPayment -> Preparing -> Ready -> {ShippingPreparation -> InTransit | PickupReady}
//   - Pickup orders reach PickupReady automatically upon Ready and are never
//     observed in the Ready status
//   - Every transition records the acting staff/system user for audit
//   - Invalid transitions fail with InvalidTransitionError, never silently
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
