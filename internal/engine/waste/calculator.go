package waste

import (
	"math"
	"sort"
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// Calculator ranks products by likelihood of becoming unsold waste.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a waste risk calculator, filling unset config
// fields with defaults.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg.withDefaults()}
}

// Assess enriches every product with the derived expiry and velocity fields
// and returns the at-risk subset: flagged, not past expiry, sorted by risk
// score descending with ties broken by days to expiry ascending. The input
// slice is not modified.
func (c *Calculator) Assess(products []domain.Product, sales []domain.Sale, now time.Time) ([]domain.Product, []domain.Product) {
	enriched := c.Enrich(products, sales, now)

	atRisk := make([]domain.Product, 0)
	for i := range enriched {
		p := &enriched[i]
		p.RiskThreshold = c.cfg.Threshold.DaysFor(p.ExpiryType)
		if float64(p.DaysToExpiry) > p.RiskThreshold {
			continue
		}

		p.RiskScore = c.score(p)
		p.AtRiskOfExpiry = flagged(p.ExpiryType.Priority(), p.RiskScore)
		if p.AtRiskOfExpiry && p.DaysToExpiry >= 0 {
			atRisk = append(atRisk, *p)
		}
	}

	sort.Slice(atRisk, func(i, j int) bool {
		if atRisk[i].RiskScore != atRisk[j].RiskScore {
			return atRisk[i].RiskScore > atRisk[j].RiskScore
		}
		return atRisk[i].DaysToExpiry < atRisk[j].DaysToExpiry
	})

	return enriched, atRisk
}

// Enrich computes days to expiry, trailing 30-day sales velocity and the
// estimated days of stock left for every product, returning a new slice.
// Products without an expiry type get one derived from their category.
func (c *Calculator) Enrich(products []domain.Product, sales []domain.Sale, now time.Time) []domain.Product {
	velocity := salesVelocity(sales, now)

	enriched := make([]domain.Product, len(products))
	for i, p := range products {
		if p.ExpiryType == "" {
			p.ExpiryType = domain.ExpiryTypeForCategory(p.Category)
		}
		p.DaysToExpiry = daysBetween(now, p.ExpiryDate)
		p.AvgDailySales30d = velocity[p.ID]
		p.EstDaysStockLeft = estimatedStockDays(p)
		enriched[i] = p
	}

	return enriched
}

// salesVelocity sums quantities sold per product inside the trailing 30-day
// window ending at now and divides by 30. Products with no matching sales
// are simply absent from the map, reading as 0.
func salesVelocity(sales []domain.Sale, now time.Time) map[string]float64 {
	cutoff := now.AddDate(0, 0, -30)

	totals := make(map[string]float64)
	for _, s := range sales {
		if s.Timestamp.Before(cutoff) || s.Timestamp.After(now) {
			continue
		}
		totals[s.ProductID] += float64(s.QuantitySold)
	}

	for id := range totals {
		totals[id] /= 30
	}

	return totals
}

// estimatedStockDays estimates how long current stock lasts. With recent
// sales it is stock over daily velocity; without, a category-specific band
// bounds a stock-scaled guess.
func estimatedStockDays(p domain.Product) float64 {
	if p.AvgDailySales30d > 0 {
		return float64(p.QuantityInStock) / p.AvgDailySales30d
	}

	stock := float64(p.QuantityInStock)
	switch p.Category {
	case domain.CategoryGroceries:
		return clampFloat(stock*2, 30, 90)
	case domain.CategoryBeauty:
		return clampFloat(stock*3, 60, 180)
	case domain.CategoryElectronics:
		return clampFloat(stock*5, 90, 365)
	case domain.CategoryClothing:
		return clampFloat(stock*2, 30, 180)
	case domain.CategoryHomeGoods, domain.CategoryBooks, domain.CategorySports:
		return clampFloat(stock*4, 60, 365)
	default:
		return clampFloat(stock*4, 60, 365)
	}
}

// score computes the bounded risk score for a product that passed the
// threshold filter.
func (c *Calculator) score(p *domain.Product) float64 {
	base := expiryComponent(p.DaysToExpiry)

	// The overhang bonus only applies when there are recent sales; the two
	// velocity branches are mutually exclusive.
	if p.AvgDailySales30d == 0 {
		base += 30
	} else if p.EstDaysStockLeft > float64(p.DaysToExpiry)*c.cfg.StockThresholdFactor {
		base += 25
	}

	return math.Min(base*priorityMultiplier(p.ExpiryType.Priority()), 100)
}

func expiryComponent(daysToExpiry int) float64 {
	switch {
	case daysToExpiry <= 0:
		return 100
	case daysToExpiry <= 7:
		return 80
	case daysToExpiry <= 30:
		return 60
	case daysToExpiry <= 90:
		return 40
	default:
		return 20
	}
}

func priorityMultiplier(p domain.PriorityClass) float64 {
	switch p {
	case domain.PriorityCritical:
		return 1.0
	case domain.PriorityModerate:
		return 0.7
	default:
		return 0.4
	}
}

// flagged applies the priority-specific at-risk score cutoff.
func flagged(p domain.PriorityClass, score float64) bool {
	switch p {
	case domain.PriorityCritical:
		return score > 30
	case domain.PriorityModerate:
		return score > 50
	default:
		return score > 70
	}
}

// daysBetween returns whole days from now until t, rounding down so a
// partially elapsed day past expiry counts as negative.
func daysBetween(now, t time.Time) int {
	return int(math.Floor(t.Sub(now).Hours() / 24))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
