package waste

import "github.com/andresuchdata/wastezero/backend-go/internal/domain"

// Threshold resolves the risk-consideration window, in days, for an expiry
// type. A product is only scored when its days to expiry fall inside this
// window. Two variants exist: a single global day count scaled by priority
// class, or an explicit per-type map.
type Threshold interface {
	DaysFor(t domain.ExpiryType) float64
}

// FixedThreshold applies one global day count: critical items use it as-is,
// moderate items half of it, low priority items a quarter.
type FixedThreshold struct {
	Days float64
}

func (f FixedThreshold) DaysFor(t domain.ExpiryType) float64 {
	switch t.Priority() {
	case domain.PriorityCritical:
		return f.Days
	case domain.PriorityModerate:
		return f.Days * 0.5
	default:
		return f.Days * 0.25
	}
}

// PerTypeThreshold maps each expiry type to its own day count. Types missing
// from the map fall back to 30 days.
type PerTypeThreshold map[domain.ExpiryType]float64

func (m PerTypeThreshold) DaysFor(t domain.ExpiryType) float64 {
	if days, ok := m[t]; ok {
		return days
	}
	return defaultThresholdDays
}

const defaultThresholdDays = 30

// Config carries the tunable parameters of the waste risk engine.
type Config struct {
	// Threshold selects products for scoring. Defaults to FixedThreshold{30}.
	Threshold Threshold
	// StockThresholdFactor is the overhang multiplier: stock expected to
	// outlast days-to-expiry times this factor earns the velocity bonus.
	// Defaults to 1.5.
	StockThresholdFactor float64
}

func (c Config) withDefaults() Config {
	if c.Threshold == nil {
		c.Threshold = FixedThreshold{Days: defaultThresholdDays}
	}
	if c.StockThresholdFactor <= 0 {
		c.StockThresholdFactor = 1.5
	}
	return c
}
