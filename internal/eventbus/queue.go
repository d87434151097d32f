package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"link-tracker/internal/domain"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	// ClicksTopic carries redirect hits waiting to be recorded.
	ClicksTopic = "link.clicks"

	DefaultBuffer = 1024
)

// ErrQueueNotReady is returned by Publish while nothing consumes the queue.
var ErrQueueNotReady = errors.New("click queue has no subscriber")

var _ message.Subscriber = (*ClickQueue)(nil)

// ClickQueue wraps a Watermill Go channel pub/sub for click delivery.
// Publish hands the message to subscriber goroutines and returns without
// waiting for acknowledgement.
type ClickQueue struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter

	ready     chan struct{}
	readyOnce sync.Once
}

// NewClickQueue creates an in-process click queue.
func NewClickQueue(buffer int, logger watermill.LoggerAdapter) *ClickQueue {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: int64(buffer),
			Persistent:          false,
		},
		logger,
	)

	return &ClickQueue{
		pubsub: pubsub,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Subscriber returns the Watermill subscriber. Subscribing marks the queue ready.
func (q *ClickQueue) Subscriber() message.Subscriber {
	return q
}

// Subscribe implements message.Subscriber.
func (q *ClickQueue) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	messages, err := q.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}
	if topic == ClicksTopic {
		q.readyOnce.Do(func() { close(q.ready) })
	}
	return messages, nil
}

// Ready is closed once a consumer has subscribed to the clicks topic.
func (q *ClickQueue) Ready() <-chan struct{} {
	return q.ready
}

// Publish queues a click for recording. The message keeps the values of ctx
// but not its cancellation, since the request usually ends first.
// Clicks published before a consumer subscribes are rejected with
// ErrQueueNotReady instead of being discarded.
func (q *ClickQueue) Publish(ctx context.Context, click domain.Click) error {
	select {
	case <-q.ready:
	default:
		return ErrQueueNotReady
	}

	msg, err := ClickToMessage(click)
	if err != nil {
		return err
	}
	msg.SetContext(context.WithoutCancel(ctx))
	return q.pubsub.Publish(ClicksTopic, msg)
}

// Close closes the queue. Queued clicks that were not delivered are lost.
func (q *ClickQueue) Close() error {
	return q.pubsub.Close()
}

// ClickToMessage converts a click to a Watermill message.
func ClickToMessage(click domain.Click) (*message.Message, error) {
	data, err := json.Marshal(click)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("link_id", click.LinkID)
	return msg, nil
}

// MessageToClick extracts the click from a Watermill message.
func MessageToClick(msg *message.Message) (domain.Click, error) {
	var click domain.Click
	if err := json.Unmarshal(msg.Payload, &click); err != nil {
		return domain.Click{}, err
	}
	return click, nil
}
