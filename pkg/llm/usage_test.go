package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenUsageCosts(t *testing.T) {
	u := NewTokenUsage(Usage{InputTokens: 1_000_000, CachedInputTokens: 1_000_000, OutputTokens: 1_000_000}, "gpt-4o")

	assert.InDelta(t, 2.50, u.InputCost, 1e-9)
	assert.InDelta(t, 1.25, u.CachedInputCost, 1e-9)
	assert.InDelta(t, 10.00, u.OutputCost, 1e-9)
	assert.InDelta(t, 13.75, u.TotalCost, 1e-9)
	assert.Equal(t, 3_000_000, u.TotalTokens)
	assert.Equal(t, "gpt-4o", u.Model)
	assert.False(t, u.Timestamp.IsZero())
}

func TestUsageTracker(t *testing.T) {
	tr := NewUsageTracker()

	_, ok := tr.Last()
	assert.False(t, ok)

	tr.Add(NewTokenUsage(Usage{InputTokens: 100, OutputTokens: 50}, "gpt-4o"))
	tr.Add(NewTokenUsage(Usage{InputTokens: 200, CachedInputTokens: 25, OutputTokens: 75}, "gpt-4o"))

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, 200, last.InputTokens)

	total := tr.Total()
	assert.Equal(t, 300, total.InputTokens)
	assert.Equal(t, 25, total.CachedInputTokens)
	assert.Equal(t, 125, total.OutputTokens)
	assert.Equal(t, 450, total.TotalTokens)
	assert.Greater(t, total.TotalCost, 0.0)

	tr.Reset()
	_, ok = tr.Last()
	assert.False(t, ok)
}
