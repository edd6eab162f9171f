package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/notification"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies staff-initiated status transitions.
// The aggregate enforces the forward-only graph; the handler adds the
// concurrency guard and records an outbox notification per applied change.
//
// Concurrent requests for the same order are serialized by a conditional
// write: the order row is updated only while its stored status still equals
// the status the transition was computed from. The loser of a race gets an
// InvalidTransitionError, exactly as if it had requested a stale transition.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
// Requires a UoWFactory spanning orders and the notification outbox.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the applied changes:
// one for a plain transition, two when a pickup order enters "ready" and
// chains into "pickup_ready". Each change gets its own outbox entry, persisted
// in the same transaction as the order update.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) ([]order.StatusChange, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	anOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := anOrder.Status()

	changes, err := anOrder.TransitionTo(cmd.Target(), cmd.Actor())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, anOrder, expected); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			// Lost a race with a concurrent transition. The precondition this
			// handler computed from is stale, so report it the same way as a
			// stale request.
			return nil, &order.InvalidTransitionError{
				From:   expected,
				To:     cmd.Target(),
				Method: anOrder.DeliveryMethod(),
			}
		}
		return nil, err
	}

	outbox := uow.NotificationRepository()
	for _, change := range changes {
		entry, notifErr := notification.NewStatusChanged(anOrder.ID(), anOrder.CustomerID(), change.To)
		if notifErr != nil {
			return nil, notifErr
		}

		if err = outbox.Add(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return changes, nil
}
