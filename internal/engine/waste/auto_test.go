package waste

import (
	"testing"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

func expiringProduct(category domain.Category, daysToExpiry int) domain.Product {
	return domain.Product{
		Category:   category,
		ExpiryDate: testNow.AddDate(0, 0, daysToExpiry),
	}
}

func TestAutoThresholdsEmptyInventoryDefaults(t *testing.T) {
	th := AutoThresholds(nil, testNow)

	if got := th.DaysFor(domain.ExpiryShelfLife); got != 7 {
		t.Errorf("shelf life default: expected 7, got %v", got)
	}
	if got := th.DaysFor(domain.ExpiryWarrantyPeriod); got != 90 {
		t.Errorf("warranty default: expected 90, got %v", got)
	}
	if got := th.DaysFor(domain.ExpiryWearPeriod); got != 180 {
		t.Errorf("wear period default: expected 180, got %v", got)
	}
}

func TestAutoThresholdsPercentile(t *testing.T) {
	// Critical band: days 2, 4, 6, 8. The 75th percentile interpolates to
	// 6.5, truncated to 6, inside [3,14].
	products := []domain.Product{
		expiringProduct(domain.CategoryGroceries, 2),
		expiringProduct(domain.CategoryGroceries, 4),
		expiringProduct(domain.CategoryBeauty, 6),
		expiringProduct(domain.CategoryBeauty, 8),
	}
	th := AutoThresholds(products, testNow)

	if got := th.DaysFor(domain.ExpiryShelfLife); got != 6 {
		t.Errorf("expected derived threshold 6, got %v", got)
	}
	if got := th.DaysFor(domain.ExpiryExpirationDate); got != 6 {
		t.Errorf("both critical types share the threshold, got %v", got)
	}
	// Untouched bands keep their defaults.
	if got := th.DaysFor(domain.ExpiryWarrantyPeriod); got != 90 {
		t.Errorf("moderate band should keep default 90, got %v", got)
	}
}

func TestAutoThresholdsClamping(t *testing.T) {
	// All critical stock expires within a day: clamp up to 3.
	short := []domain.Product{
		expiringProduct(domain.CategoryGroceries, 0),
		expiringProduct(domain.CategoryGroceries, 1),
	}
	th := AutoThresholds(short, testNow)
	if got := th.DaysFor(domain.ExpiryShelfLife); got != 3 {
		t.Errorf("expected clamp to 3, got %v", got)
	}

	// Durable critical stock clamps down to 14.
	long := []domain.Product{
		expiringProduct(domain.CategoryGroceries, 100),
		expiringProduct(domain.CategoryBeauty, 200),
	}
	th = AutoThresholds(long, testNow)
	if got := th.DaysFor(domain.ExpiryShelfLife); got != 14 {
		t.Errorf("expected clamp to 14, got %v", got)
	}
}

func TestPercentileInterpolation(t *testing.T) {
	tests := []struct {
		values []float64
		q      float64
		want   float64
	}{
		{[]float64{10}, 0.75, 10},
		{[]float64{1, 2, 3, 4}, 0.75, 3.25},
		{[]float64{1, 3}, 0.5, 2},
		{[]float64{5, 1, 3}, 1.0, 5},
	}
	for _, tt := range tests {
		if got := percentile(tt.values, tt.q); got != tt.want {
			t.Errorf("percentile(%v, %v): expected %v, got %v", tt.values, tt.q, tt.want, got)
		}
	}
}
