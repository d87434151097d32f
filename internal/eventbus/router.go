package eventbus

import (
	"context"

	"link-tracker/internal/domain"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ClickHandler consumes clicks from the queue.
type ClickHandler interface {
	// HandlerName returns the name of the handler.
	HandlerName() string
	// HandleClick processes a single click.
	HandleClick(ctx context.Context, click domain.Click) error
}

// Router routes queued clicks to handlers.
type Router struct {
	router *message.Router
	queue  *ClickQueue
	logger watermill.LoggerAdapter
}

// NewRouter creates a new click router.
func NewRouter(queue *ClickQueue, logger watermill.LoggerAdapter) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	return &Router{
		router: router,
		queue:  queue,
		logger: logger,
	}, nil
}

// AddHandler registers a click handler on the clicks topic.
func (r *Router) AddHandler(handler ClickHandler) {
	r.router.AddNoPublisherHandler(
		handler.HandlerName(),
		ClicksTopic,
		r.queue.Subscriber(),
		r.createHandlerFunc(handler),
	)
}

// createHandlerFunc acks every message. A click that fails to record is
// dropped rather than redelivered.
func (r *Router) createHandlerFunc(handler ClickHandler) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		click, err := MessageToClick(msg)
		if err != nil {
			r.logger.Error("failed to parse click message", err, watermill.LogFields{
				"message_uuid": msg.UUID,
			})
			return nil
		}

		if err := handler.HandleClick(msg.Context(), click); err != nil {
			r.logger.Error("failed to handle click", err, watermill.LogFields{
				"handler": handler.HandlerName(),
				"link_id": click.LinkID,
			})
		}
		return nil
	}
}

// Run starts the router and blocks until ctx is cancelled or Close is called.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running returns a channel that is closed when the router is running.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

// Close stops the router, waiting for in-flight handlers.
func (r *Router) Close() error {
	return r.router.Close()
}
