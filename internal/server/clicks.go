package server

import (
	"context"
	"errors"

	"link-tracker/internal/eventbus"

	"github.com/go-kratos/kratos/v2/transport"
)

var _ transport.Server = (*ClickConsumer)(nil)

// ClickConsumer runs the click router as part of the application lifecycle.
type ClickConsumer struct {
	queue  *eventbus.ClickQueue
	router *eventbus.Router
}

func NewClickConsumer(queue *eventbus.ClickQueue, router *eventbus.Router) *ClickConsumer {
	return &ClickConsumer{queue: queue, router: router}
}

// Ready is closed once the router has subscribed to the click queue.
func (c *ClickConsumer) Ready() <-chan struct{} {
	return c.queue.Ready()
}

// Start blocks until ctx is cancelled or Stop is called.
func (c *ClickConsumer) Start(ctx context.Context) error {
	return c.router.Run(ctx)
}

// Stop waits for in-flight clicks, then closes the queue.
func (c *ClickConsumer) Stop(context.Context) error {
	return errors.Join(c.router.Close(), c.queue.Close())
}
