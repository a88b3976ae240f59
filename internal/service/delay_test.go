package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingWait_ZeroReturnsImmediately(t *testing.T) {
	start := time.Now()
	require.NoError(t, processingWait(context.Background(), 0))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestProcessingWait_Waits(t *testing.T) {
	start := time.Now()
	require.NoError(t, processingWait(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestProcessingWait_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := processingWait(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
