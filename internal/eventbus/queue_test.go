package eventbus

import (
	"context"
	"testing"
	"time"

	"link-tracker/internal/domain"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/suite"
)

type ClickQueueTestSuite struct {
	suite.Suite
	sut *ClickQueue
}

func TestClickQueueTestSuite(t *testing.T) {
	suite.Run(t, new(ClickQueueTestSuite))
}

func (s *ClickQueueTestSuite) SetupTest() {
	s.sut = NewClickQueue(16, watermill.NopLogger{})
}

func (s *ClickQueueTestSuite) TearDownTest() {
	if s.sut != nil {
		s.sut.Close()
	}
}

func testClick() domain.Click {
	return domain.Click{
		LinkID:    "link-1",
		At:        time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		IPAddress: "203.0.113.5",
		UserAgent: "Mozilla/5.0",
		Referrer:  "https://news.ycombinator.com/",
	}
}

func (s *ClickQueueTestSuite) TestPublish_WithoutSubscribers_IsRejected() {
	// Act
	err := s.sut.Publish(context.Background(), testClick())

	// Assert
	s.ErrorIs(err, ErrQueueNotReady)
	select {
	case <-s.sut.Ready():
		s.Fail("queue should not be ready")
	default:
	}
}

func (s *ClickQueueTestSuite) TestSubscribe_MarksQueueReady() {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	_, err := s.sut.Subscribe(ctx, ClicksTopic)

	// Assert
	s.Require().NoError(err)
	select {
	case <-s.sut.Ready():
	default:
		s.Fail("queue should be ready after subscribe")
	}
	s.NoError(s.sut.Publish(ctx, testClick()))
}

func (s *ClickQueueTestSuite) TestClickToMessage() {
	// Arrange
	click := testClick()

	// Act
	msg, err := ClickToMessage(click)

	// Assert
	s.Require().NoError(err)
	s.NotEmpty(msg.UUID)
	s.Equal("link-1", msg.Metadata.Get("link_id"))

	decoded, err := MessageToClick(msg)
	s.Require().NoError(err)
	s.Equal(click.LinkID, decoded.LinkID)
	s.True(click.At.Equal(decoded.At))
	s.Equal(click.Referrer, decoded.Referrer)
}

func (s *ClickQueueTestSuite) TestPublishAndSubscribe() {
	// Arrange
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	messages, err := s.sut.Subscriber().Subscribe(ctx, ClicksTopic)
	s.Require().NoError(err)

	// Act
	err = s.sut.Publish(ctx, testClick())
	s.Require().NoError(err)

	// Assert
	select {
	case msg := <-messages:
		click, err := MessageToClick(msg)
		s.NoError(err)
		s.Equal("203.0.113.5", click.IPAddress)
		msg.Ack()
	case <-ctx.Done():
		s.Fail("timeout waiting for message")
	}
}

func (s *ClickQueueTestSuite) TestPublish_CancelledRequestContext_DoesNotCancelMessage() {
	// Arrange
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	messages, err := s.sut.Subscriber().Subscribe(ctx, ClicksTopic)
	s.Require().NoError(err)
	reqCtx, reqCancel := context.WithCancel(context.Background())

	// Act
	err = s.sut.Publish(reqCtx, testClick())
	reqCancel()

	// Assert
	s.Require().NoError(err)
	select {
	case msg := <-messages:
		s.NoError(msg.Context().Err())
		msg.Ack()
	case <-ctx.Done():
		s.Fail("timeout waiting for message")
	}
}
