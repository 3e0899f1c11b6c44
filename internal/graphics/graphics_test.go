package graphics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerDue(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := time.Millisecond

	var tk Ticker
	tk.Reset(20*ms, start)

	tests := []struct {
		at   time.Duration
		want int
	}{
		{0, 0},
		{19 * ms, 0},
		{20 * ms, 1},
		{25 * ms, 0},
		{40 * ms, 1},
		{99 * ms, 2},
		{100 * ms, 1},
		{2 * time.Second, maxCatchUp},
		{2*time.Second + 19*ms, 0},
		{2*time.Second + 20*ms, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tk.Due(start.Add(tc.at)), "at %v", tc.at)
	}
}

func TestTickerDisabled(t *testing.T) {
	var tk Ticker
	now := time.Now()
	tk.Reset(0, now)
	assert.Zero(t, tk.Due(now.Add(time.Hour)))
}
