package domain

import "testing"

func TestExpiryTypeForCategory(t *testing.T) {
	tests := []struct {
		category Category
		want     ExpiryType
	}{
		{CategoryGroceries, ExpiryShelfLife},
		{CategoryBeauty, ExpiryExpirationDate},
		{CategoryElectronics, ExpiryWarrantyPeriod},
		{CategoryClothing, ExpiryFashionSeason},
		{CategoryHomeGoods, ExpiryQualityPeriod},
		{CategoryBooks, ExpiryObsolescence},
		{CategorySports, ExpiryWearPeriod},
		{Category("Unheard Of"), ExpiryWearPeriod},
	}
	for _, tt := range tests {
		if got := ExpiryTypeForCategory(tt.category); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.category, tt.want, got)
		}
	}
}

func TestExpiryTypePriority(t *testing.T) {
	critical := []ExpiryType{ExpiryShelfLife, ExpiryExpirationDate}
	for _, et := range critical {
		if et.Priority() != PriorityCritical {
			t.Errorf("%s should be critical", et)
		}
	}
	moderate := []ExpiryType{ExpiryWarrantyPeriod, ExpiryFashionSeason}
	for _, et := range moderate {
		if et.Priority() != PriorityModerate {
			t.Errorf("%s should be moderate", et)
		}
	}
	low := []ExpiryType{ExpiryQualityPeriod, ExpiryObsolescence, ExpiryWearPeriod, ExpiryType("???")}
	for _, et := range low {
		if et.Priority() != PriorityLow {
			t.Errorf("%s should be low", et)
		}
	}
}

func TestPriorityClassString(t *testing.T) {
	if PriorityCritical.String() != "Critical" || PriorityModerate.String() != "Moderate" || PriorityLow.String() != "Low" {
		t.Error("unexpected priority names")
	}
}

func TestCategoriesCoverEveryConstant(t *testing.T) {
	if len(Categories) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(Categories))
	}
	seen := make(map[Category]bool)
	for _, c := range Categories {
		if seen[c] {
			t.Errorf("duplicate category %s", c)
		}
		seen[c] = true
	}
}

func TestInventoryValue(t *testing.T) {
	p := Product{CostPrice: 2.5, QuantityInStock: 40}
	if got := p.InventoryValue(); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	empty := Product{CostPrice: 9.99}
	if got := empty.InventoryValue(); got != 0 {
		t.Errorf("expected 0 for empty stock, got %v", got)
	}
}
