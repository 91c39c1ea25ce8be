package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		failures int
		want     time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 5 * time.Second},
		{40, 5 * time.Second},
	}
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			got := retryDelay(tt.failures, time.Second, 5*time.Second)
			assert.GreaterOrEqual(t, got, time.Duration(float64(tt.want)*0.8), "failures=%d", tt.failures)
			assert.LessOrEqual(t, got, time.Duration(float64(tt.want)*1.2), "failures=%d", tt.failures)
			assert.LessOrEqual(t, got, 5*time.Second, "failures=%d", tt.failures)
		}
	}
}

func TestRetryDelay_BaseAboveMax(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.LessOrEqual(t, retryDelay(1, 2*time.Second, time.Second), time.Second)
	}
}

func TestSleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleep(ctx, time.Hour))
	assert.True(t, sleep(context.Background(), time.Millisecond))
}
