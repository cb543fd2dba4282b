package llm

import (
	"sync"
	"time"
)

// Pricing per million tokens. Defaults match gpt-4o list prices.
const (
	DefaultInputCostPerMillion       = 2.50
	DefaultCachedInputCostPerMillion = 1.25
	DefaultOutputCostPerMillion      = 10.00
)

// TokenUsage is one API call's token counts with derived costs.
type TokenUsage struct {
	InputTokens       int       `json:"inputTokens"`
	CachedInputTokens int       `json:"cachedInputTokens"`
	OutputTokens      int       `json:"outputTokens"`
	TotalTokens       int       `json:"totalTokens"`
	InputCost         float64   `json:"inputCost"`
	CachedInputCost   float64   `json:"cachedInputCost"`
	OutputCost        float64   `json:"outputCost"`
	TotalCost         float64   `json:"totalCost"`
	Model             string    `json:"model"`
	Timestamp         time.Time `json:"timestamp"`
}

// NewTokenUsage builds a costed record from a provider usage report.
func NewTokenUsage(u Usage, model string) TokenUsage {
	tu := TokenUsage{
		InputTokens:       u.InputTokens,
		CachedInputTokens: u.CachedInputTokens,
		OutputTokens:      u.OutputTokens,
		Model:             model,
		Timestamp:         time.Now().UTC(),
	}
	tu.calculateCosts()
	return tu
}

func (t *TokenUsage) calculateCosts() {
	t.InputCost = float64(t.InputTokens) / 1_000_000 * DefaultInputCostPerMillion
	t.CachedInputCost = float64(t.CachedInputTokens) / 1_000_000 * DefaultCachedInputCostPerMillion
	t.OutputCost = float64(t.OutputTokens) / 1_000_000 * DefaultOutputCostPerMillion
	t.TotalCost = t.InputCost + t.CachedInputCost + t.OutputCost
	t.TotalTokens = t.InputTokens + t.CachedInputTokens + t.OutputTokens
}

// UsageTracker accumulates token usage across calls. Safe for concurrent
// use by request handlers.
type UsageTracker struct {
	mu      sync.Mutex
	history []TokenUsage
}

func NewUsageTracker() *UsageTracker { return &UsageTracker{} }

func (tr *UsageTracker) Add(u TokenUsage) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.history = append(tr.history, u)
}

// Last returns the most recent record, if any.
func (tr *UsageTracker) Last() (TokenUsage, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if len(tr.history) == 0 {
		return TokenUsage{}, false
	}
	return tr.history[len(tr.history)-1], true
}

// Total sums every tracked call.
func (tr *UsageTracker) Total() TokenUsage {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	var total TokenUsage
	for _, u := range tr.history {
		total.InputTokens += u.InputTokens
		total.CachedInputTokens += u.CachedInputTokens
		total.OutputTokens += u.OutputTokens
	}
	total.calculateCosts()
	total.Timestamp = time.Now().UTC()
	return total
}

func (tr *UsageTracker) Reset() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.history = nil
}
