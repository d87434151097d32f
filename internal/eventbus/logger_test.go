package eventbus

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter_WritesFieldsAndError(t *testing.T) {
	// Setup
	core, logs := observer.New(zap.DebugLevel)
	adapter := NewZapLoggerAdapter(zap.New(core)).With(watermill.LogFields{"topic": ClicksTopic})

	// Act
	adapter.Error("handler failed", errors.New("boom"), watermill.LogFields{"link_id": "abc"})
	adapter.Trace("tick", nil)

	// Assert
	entries := logs.All()
	assert.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "handler failed", entries[0].Message)
	assert.Equal(t, ClicksTopic, fields["topic"])
	assert.Equal(t, "abc", fields["link_id"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, zap.DebugLevel, entries[1].Level)
}
