package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithOptionalTimeout(t *testing.T) {
	ctx, cancel := WithOptionalTimeout(context.Background(), 0)
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	ctx, cancel = WithOptionalTimeout(context.Background(), time.Minute)
	defer cancel()
	_, hasDeadline = ctx.Deadline()
	assert.True(t, hasDeadline)
}
