package waste

import (
	"testing"
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func groceriesProduct(id string, daysToExpiry, stock int) domain.Product {
	return domain.Product{
		ID:              id,
		Name:            "Fresh Milk 2L",
		Category:        domain.CategoryGroceries,
		ExpiryDate:      testNow.AddDate(0, 0, daysToExpiry),
		ExpiryType:      domain.ExpiryShelfLife,
		QuantityInStock: stock,
		CostPrice:       2.5,
	}
}

func saleAt(productID string, t time.Time, qty int) domain.Sale {
	return domain.Sale{TransactionID: "tx", ProductID: productID, Timestamp: t, QuantitySold: qty}
}

func TestAssessImminentGroceriesMaxScore(t *testing.T) {
	calc := NewCalculator(Config{Threshold: FixedThreshold{Days: 30}})

	products := []domain.Product{groceriesProduct("P1", 2, 50)}
	_, atRisk := calc.Assess(products, nil, testNow)

	if len(atRisk) != 1 {
		t.Fatalf("expected 1 at-risk product, got %d", len(atRisk))
	}
	p := atRisk[0]
	if p.RiskScore != 100 {
		t.Errorf("expected risk score 100, got %v", p.RiskScore)
	}
	if !p.AtRiskOfExpiry {
		t.Error("expected product to be flagged")
	}
	if p.DaysToExpiry != 2 {
		t.Errorf("expected 2 days to expiry, got %d", p.DaysToExpiry)
	}
}

func TestAssessDistantElectronicsExcluded(t *testing.T) {
	calc := NewCalculator(Config{Threshold: FixedThreshold{Days: 30}})

	products := []domain.Product{{
		ID:              "P1",
		Category:        domain.CategoryElectronics,
		ExpiryDate:      testNow.AddDate(0, 0, 200),
		ExpiryType:      domain.ExpiryWarrantyPeriod,
		QuantityInStock: 10,
	}}
	enriched, atRisk := calc.Assess(products, nil, testNow)

	if len(atRisk) != 0 {
		t.Fatalf("expected no at-risk products, got %d", len(atRisk))
	}
	if enriched[0].RiskScore != 0 {
		t.Errorf("excluded product should keep zero score, got %v", enriched[0].RiskScore)
	}
}

func TestAssessExpiredProductNotListed(t *testing.T) {
	calc := NewCalculator(Config{Threshold: FixedThreshold{Days: 30}})

	products := []domain.Product{groceriesProduct("P1", -3, 10)}
	enriched, atRisk := calc.Assess(products, nil, testNow)

	if len(atRisk) != 0 {
		t.Fatalf("expired product must not appear in the at-risk list, got %d entries", len(atRisk))
	}
	if !enriched[0].AtRiskOfExpiry {
		t.Error("expired product should still carry the at-risk flag")
	}
	if enriched[0].RiskScore != 100 {
		t.Errorf("expired product should score 100, got %v", enriched[0].RiskScore)
	}
}

func TestVelocityBonusesMutuallyExclusive(t *testing.T) {
	calc := NewCalculator(Config{Threshold: FixedThreshold{Days: 30}, StockThresholdFactor: 1.5})

	// 300 units sold over the window gives 10/day, so 100 units last 10
	// days against 5 days to expiry: overhang bonus, not the no-sales one.
	sales := []domain.Sale{saleAt("P1", testNow.AddDate(0, 0, -10), 300)}
	products := []domain.Product{groceriesProduct("P1", 5, 100)}

	_, atRisk := calc.Assess(products, sales, testNow)
	if len(atRisk) != 1 {
		t.Fatalf("expected 1 at-risk product, got %d", len(atRisk))
	}
	// expiry 80 + overhang 25, critical multiplier 1.0
	if got := atRisk[0].RiskScore; got != 100 {
		t.Errorf("expected capped score 100, got %v", got)
	}

	// Lower overhang: 30 units over the window is 1/day, 3 units last 3
	// days which stays below 5*1.5, so no bonus at all.
	sales = []domain.Sale{saleAt("P2", testNow.AddDate(0, 0, -10), 30)}
	products = []domain.Product{groceriesProduct("P2", 5, 3)}

	_, atRisk = calc.Assess(products, sales, testNow)
	if len(atRisk) != 1 {
		t.Fatalf("expected 1 at-risk product, got %d", len(atRisk))
	}
	if got := atRisk[0].RiskScore; got != 80 {
		t.Errorf("expected bare expiry score 80, got %v", got)
	}
}

func TestAssessSortsByScoreThenDays(t *testing.T) {
	calc := NewCalculator(Config{Threshold: FixedThreshold{Days: 30}})

	products := []domain.Product{
		groceriesProduct("P-late", 10, 5),
		groceriesProduct("P-soon", 2, 5),
		groceriesProduct("P-mid", 5, 5),
	}
	_, atRisk := calc.Assess(products, nil, testNow)

	if len(atRisk) != 3 {
		t.Fatalf("expected 3 at-risk products, got %d", len(atRisk))
	}
	// P-soon and P-mid both score 100 (80+30 capped); P-soon wins on days.
	// P-late scores 90 (60+30).
	wantOrder := []string{"P-soon", "P-mid", "P-late"}
	for i, want := range wantOrder {
		if atRisk[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, atRisk[i].ID)
		}
	}
	if atRisk[2].RiskScore != 90 {
		t.Errorf("expected P-late to score 90, got %v", atRisk[2].RiskScore)
	}
}

func TestSalesVelocityWindow(t *testing.T) {
	sales := []domain.Sale{
		saleAt("P1", testNow.AddDate(0, 0, -30), 30),          // on the boundary, included
		saleAt("P1", testNow.AddDate(0, 0, -31), 300),         // too old
		saleAt("P1", testNow.Add(time.Hour), 300),             // in the future
		saleAt("P1", testNow.Add(-time.Hour), 30),             // just now
		saleAt("P2", testNow.AddDate(0, 0, -5), 15),           // other product
	}

	velocity := salesVelocity(sales, testNow)
	if got := velocity["P1"]; got != 2 {
		t.Errorf("expected P1 velocity 2.0, got %v", got)
	}
	if got := velocity["P2"]; got != 0.5 {
		t.Errorf("expected P2 velocity 0.5, got %v", got)
	}
	if _, ok := velocity["P3"]; ok {
		t.Error("unexpected entry for product with no sales")
	}
}

func TestEstimatedStockDaysFallbackBands(t *testing.T) {
	tests := []struct {
		category domain.Category
		stock    int
		want     float64
	}{
		{domain.CategoryGroceries, 50, 90},    // 100 clamps to 90
		{domain.CategoryGroceries, 5, 30},     // 10 clamps up to 30
		{domain.CategoryBeauty, 30, 90},       // 90 inside [60,180]
		{domain.CategoryElectronics, 10, 90},  // 50 clamps up to 90
		{domain.CategoryClothing, 40, 80},     // 80 inside [30,180]
		{domain.CategoryBooks, 20, 80},        // 80 inside [60,365]
		{domain.CategoryHomeGoods, 200, 365},  // 800 clamps to 365
	}
	for _, tt := range tests {
		p := domain.Product{Category: tt.category, QuantityInStock: tt.stock}
		if got := estimatedStockDays(p); got != tt.want {
			t.Errorf("%s stock %d: expected %v days, got %v", tt.category, tt.stock, tt.want, got)
		}
	}
}

func TestEstimatedStockDaysWithVelocity(t *testing.T) {
	p := domain.Product{Category: domain.CategoryGroceries, QuantityInStock: 60, AvgDailySales30d: 4}
	if got := estimatedStockDays(p); got != 15 {
		t.Errorf("expected 15 days, got %v", got)
	}
}

func TestEnrichDerivesExpiryType(t *testing.T) {
	calc := NewCalculator(Config{})
	products := []domain.Product{{
		ID:         "P1",
		Category:   domain.CategoryClothing,
		ExpiryDate: testNow.AddDate(0, 0, 10),
	}}

	enriched := calc.Enrich(products, nil, testNow)
	if enriched[0].ExpiryType != domain.ExpiryFashionSeason {
		t.Errorf("expected derived Fashion Season type, got %q", enriched[0].ExpiryType)
	}
	// input slice untouched
	if products[0].ExpiryType != "" {
		t.Error("input slice must not be modified")
	}
}

func TestDaysBetweenFloors(t *testing.T) {
	if got := daysBetween(testNow, testNow.Add(12*time.Hour)); got != 0 {
		t.Errorf("half a day ahead should floor to 0, got %d", got)
	}
	if got := daysBetween(testNow, testNow.Add(-12*time.Hour)); got != -1 {
		t.Errorf("half a day past should floor to -1, got %d", got)
	}
	if got := daysBetween(testNow, testNow.AddDate(0, 0, 3)); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestFlaggedCutoffsByPriority(t *testing.T) {
	tests := []struct {
		priority domain.PriorityClass
		score    float64
		want     bool
	}{
		{domain.PriorityCritical, 30, false},
		{domain.PriorityCritical, 31, true},
		{domain.PriorityModerate, 50, false},
		{domain.PriorityModerate, 51, true},
		{domain.PriorityLow, 70, false},
		{domain.PriorityLow, 71, true},
	}
	for _, tt := range tests {
		if got := flagged(tt.priority, tt.score); got != tt.want {
			t.Errorf("flagged(%v, %v): expected %v, got %v", tt.priority, tt.score, tt.want, got)
		}
	}
}

func TestFixedThresholdScalesByPriority(t *testing.T) {
	th := FixedThreshold{Days: 30}
	if got := th.DaysFor(domain.ExpiryShelfLife); got != 30 {
		t.Errorf("critical: expected 30, got %v", got)
	}
	if got := th.DaysFor(domain.ExpiryWarrantyPeriod); got != 15 {
		t.Errorf("moderate: expected 15, got %v", got)
	}
	if got := th.DaysFor(domain.ExpiryObsolescence); got != 7.5 {
		t.Errorf("low: expected 7.5, got %v", got)
	}
}
