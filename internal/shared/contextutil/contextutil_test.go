package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetLogger_ScopedThenFallbackThenNop(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	fallback := zap.NewNop().Named("fallback")

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLogger(ctx, fallback))
	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}
