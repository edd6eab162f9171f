// Package notification provides the outbox entry recorded for every
// customer-facing order event. Entries are persisted in the same transaction
// as the order change and relayed to the message broker by a background job,
// decoupling notification delivery from the order workflow.
package notification
