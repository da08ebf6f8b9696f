package waste

import (
	"math"
	"sort"
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// AutoThresholds derives a per-type threshold map from the inventory itself:
// for each priority band it takes the 75th percentile of days to expiry and
// clamps it to a band-appropriate range, so a store full of short-dated
// stock tracks more aggressively than one holding durable goods.
func AutoThresholds(products []domain.Product, now time.Time) PerTypeThreshold {
	thresholds := PerTypeThreshold{
		domain.ExpiryShelfLife:      7,
		domain.ExpiryExpirationDate: 7,
		domain.ExpiryWarrantyPeriod: 90,
		domain.ExpiryFashionSeason:  90,
		domain.ExpiryQualityPeriod:  180,
		domain.ExpiryObsolescence:   180,
		domain.ExpiryWearPeriod:     180,
	}
	if len(products) == 0 {
		return thresholds
	}

	var critical, moderate, low []float64
	for _, p := range products {
		days := float64(daysBetween(now, p.ExpiryDate))
		switch domain.ExpiryTypeForCategory(p.Category).Priority() {
		case domain.PriorityCritical:
			critical = append(critical, days)
		case domain.PriorityModerate:
			moderate = append(moderate, days)
		default:
			low = append(low, days)
		}
	}

	if len(critical) > 0 {
		days := clampFloat(math.Trunc(percentile(critical, 0.75)), 3, 14)
		thresholds[domain.ExpiryShelfLife] = days
		thresholds[domain.ExpiryExpirationDate] = days
	}
	if len(moderate) > 0 {
		days := clampFloat(math.Trunc(percentile(moderate, 0.75)), 30, 180)
		thresholds[domain.ExpiryWarrantyPeriod] = days
		thresholds[domain.ExpiryFashionSeason] = days
	}
	if len(low) > 0 {
		days := clampFloat(math.Trunc(percentile(low, 0.75)), 90, 365)
		thresholds[domain.ExpiryQualityPeriod] = days
		thresholds[domain.ExpiryObsolescence] = days
		thresholds[domain.ExpiryWearPeriod] = days
	}

	return thresholds
}

// percentile computes the q-th percentile with linear interpolation between
// adjacent ranks.
func percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
