package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRetryDelay(t *testing.T) {
	baseRetryDelay := 100 * time.Millisecond

	tests := []struct {
		name             string
		attempt          int
		expectedMinDelay time.Duration
		expectedMaxDelay time.Duration
		expectZero       bool
	}{
		{
			name:       "Attempt 0",
			attempt:    0,
			expectZero: true,
		},
		{
			name:       "Attempt 1",
			attempt:    1,
			expectZero: true,
		},
		{
			name:             "Attempt 2",
			attempt:          2,
			expectedMinDelay: time.Duration(math.Pow(2, 1) * float64(baseRetryDelay) * 0.5),
			expectedMaxDelay: time.Duration(math.Pow(2, 1) * float64(baseRetryDelay) * 1.5),
		},
		{
			name:             "Attempt 4",
			attempt:          4,
			expectedMinDelay: time.Duration(math.Pow(2, 3) * float64(baseRetryDelay) * 0.5),
			expectedMaxDelay: time.Duration(math.Pow(2, 3) * float64(baseRetryDelay) * 1.5),
		},
		{
			name:       "Negative Attempt",
			attempt:    -1,
			expectZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay := CalculateRetryDelay(tt.attempt, baseRetryDelay)

			if tt.expectZero {
				assert.Equal(t, time.Duration(0), delay, "Expected zero delay")
			} else {
				assert.True(t, delay >= tt.expectedMinDelay, "Delay %v should be >= %v", delay, tt.expectedMinDelay)
				assert.True(t, delay <= tt.expectedMaxDelay, "Delay %v should be <= %v", delay, tt.expectedMaxDelay)
			}
		})
	}
}

func TestCalculateRetryDelayNonPositiveBase(t *testing.T) {
	assert.Equal(t, time.Duration(0), CalculateRetryDelay(3, 0))
	assert.Equal(t, time.Duration(0), CalculateRetryDelay(3, -time.Second))
}
