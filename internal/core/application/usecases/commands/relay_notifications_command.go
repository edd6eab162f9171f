package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var (
	ErrRelayNotificationsCommandIsNotConstructed = errors.New(
		"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// RelayNotificationsCommand triggers draining of the notification outbox.
// Pending entries are published to the message broker and marked sent; entries
// whose publish fails stay pending for the next run.
//
// Example:
//
//	cmd, _ := NewRelayNotificationsCommand(50)
//	handler := NewRelayNotificationsCommandHandler(uowFactory, publisher)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Warn("relay run left entries pending", "error", err)
//	}
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command to drain up to batchSize
// pending outbox entries, oldest first.
func NewRelayNotificationsCommand(batchSize int) (RelayNotificationsCommand, error) {
	command := RelayNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBatchSize(batchSize); err != nil {
		return RelayNotificationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRelayNotificationsCommandIsNotConstructed if validation fails.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of entries processed per run.
func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayNotificationsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsInvalid
	}

	c.batchSize = batchSize
	return nil
}
