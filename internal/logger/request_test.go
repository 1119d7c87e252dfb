package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, requestFields(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Len(t, requestFields(ctx), 1)

	assert.Equal(t, ctx, WithRequestID(ctx, ""))
}

func TestFromContext(t *testing.T) {
	assert.NoError(t, Initialize(Config{Debug: true}))

	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromContext(WithRequestID(context.Background(), "req-2")))
}
