// Package supplier scores suppliers by reliability, delivery time and the
// expiry exposure of the inventory they stock.
package supplier

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// expiryRiskWindowDays is the horizon used for expiry exposure: stock
// expiring inside it counts against the supplier.
const expiryRiskWindowDays = 30

// Metrics aggregates one supplier's inventory exposure and risk.
type Metrics struct {
	SupplierID          string  `json:"supplier_id"`
	SupplierName        string  `json:"supplier_name"`
	ReliabilityScore    float64 `json:"reliability_score"`
	DeliveryTimeDays    int     `json:"delivery_time_days"`
	TotalProducts       int     `json:"total_products"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	AvgUnitCost         float64 `json:"avg_product_price"`
	ExpiryRiskValue     float64 `json:"expiry_risk_value"`
	AvgStockLevel       float64 `json:"avg_stock_level"`
	RiskScore           float64 `json:"risk_score"`
}

// Analyze joins every supplier against the products referencing it and
// computes its aggregate metrics and risk score. The result is sorted by
// risk score descending.
func Analyze(suppliers []domain.Supplier, products []domain.Product, now time.Time) []Metrics {
	bySupplier := make(map[string][]domain.Product)
	for _, p := range products {
		bySupplier[p.SupplierID] = append(bySupplier[p.SupplierID], p)
	}

	metrics := make([]Metrics, 0, len(suppliers))
	for _, s := range suppliers {
		owned := bySupplier[s.ID]

		m := Metrics{
			SupplierID:       s.ID,
			SupplierName:     s.Name,
			ReliabilityScore: s.ReliabilityScore,
			DeliveryTimeDays: s.DeliveryTimeDays,
			TotalProducts:    len(owned),
		}

		totalStock := 0
		for _, p := range owned {
			m.TotalInventoryValue += p.InventoryValue()
			m.AvgUnitCost += p.CostPrice
			totalStock += p.QuantityInStock
			if expiresWithin(p, now, expiryRiskWindowDays) {
				m.ExpiryRiskValue += p.InventoryValue()
			}
		}
		if len(owned) > 0 {
			m.AvgUnitCost /= float64(len(owned))
			m.AvgStockLevel = float64(totalStock) / float64(len(owned))
		}

		m.RiskScore = riskScore(s, m.ExpiryRiskValue, m.TotalInventoryValue)
		metrics = append(metrics, m)
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].RiskScore != metrics[j].RiskScore {
			return metrics[i].RiskScore > metrics[j].RiskScore
		}
		return metrics[i].SupplierID < metrics[j].SupplierID
	})

	return metrics
}

// riskScore combines reliability (30 points), delivery time capped at two
// weeks (20 points) and the share of inventory value expiring soon
// (50 points), clamped to 100.
func riskScore(s domain.Supplier, expiryRiskValue, totalValue float64) float64 {
	score := (1 - s.ReliabilityScore) * 30
	score += math.Min(float64(s.DeliveryTimeDays)/14, 1) * 20
	if totalValue > 0 {
		score += expiryRiskValue / totalValue * 50
	}
	return math.Min(score, 100)
}

func expiresWithin(p domain.Product, now time.Time, days int) bool {
	return math.Floor(p.ExpiryDate.Sub(now).Hours()/24) <= float64(days)
}

// Recommendation is one actionable supplier finding.
type Recommendation struct {
	SupplierName   string `json:"supplier_name"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
}

// expiryRiskDollarThreshold is the exposure above which a supplier earns a
// dedicated expiry-risk recommendation.
const expiryRiskDollarThreshold = 1000

// Recommendations flags the top-3 suppliers by risk score and the top-3 by
// absolute expiry exposure.
func Recommendations(metrics []Metrics) []Recommendation {
	recs := make([]Recommendation, 0)

	for _, m := range topBy(metrics, 3, func(m Metrics) float64 { return m.RiskScore }) {
		switch {
		case m.RiskScore > 70:
			recs = append(recs, Recommendation{
				SupplierName: m.SupplierName,
				Issue:        "High Risk Supplier",
				Recommendation: fmt.Sprintf("Consider finding alternative suppliers for %s. Risk score: %.1f/100",
					m.SupplierName, m.RiskScore),
				Priority: "High",
			})
		case m.RiskScore > 50:
			recs = append(recs, Recommendation{
				SupplierName: m.SupplierName,
				Issue:        "Moderate Risk Supplier",
				Recommendation: fmt.Sprintf("Monitor %s closely. Risk score: %.1f/100",
					m.SupplierName, m.RiskScore),
				Priority: "Medium",
			})
		}
	}

	for _, m := range topBy(metrics, 3, func(m Metrics) float64 { return m.ExpiryRiskValue }) {
		if m.ExpiryRiskValue > expiryRiskDollarThreshold {
			recs = append(recs, Recommendation{
				SupplierName: m.SupplierName,
				Issue:        "High Expiry Risk",
				Recommendation: fmt.Sprintf("$%.2f worth of inventory from %s expires within %d days. Consider promotional pricing or supplier returns.",
					m.ExpiryRiskValue, m.SupplierName, expiryRiskWindowDays),
				Priority: "High",
			})
		}
	}

	return recs
}

func topBy(metrics []Metrics, n int, key func(Metrics) float64) []Metrics {
	sorted := make([]Metrics, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool { return key(sorted[i]) > key(sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SummaryStats is the supplier overview shown at the top of the report.
type SummaryStats struct {
	TotalSuppliers        int     `json:"total_suppliers"`
	AvgReliabilityScore   float64 `json:"avg_reliability_score"`
	AvgDeliveryTimeDays   float64 `json:"avg_delivery_time"`
	TotalInventoryValue   float64 `json:"total_inventory_value"`
	TotalExpiryRiskValue  float64 `json:"total_expiry_risk_value"`
	HighRiskSuppliers     int     `json:"high_risk_suppliers"`
	ModerateRiskSuppliers int     `json:"moderate_risk_suppliers"`
	LowRiskSuppliers      int     `json:"low_risk_suppliers"`
}

// Summarize computes overview statistics across all supplier metrics.
func Summarize(metrics []Metrics) SummaryStats {
	stats := SummaryStats{TotalSuppliers: len(metrics)}
	if len(metrics) == 0 {
		return stats
	}

	for _, m := range metrics {
		stats.AvgReliabilityScore += m.ReliabilityScore
		stats.AvgDeliveryTimeDays += float64(m.DeliveryTimeDays)
		stats.TotalInventoryValue += m.TotalInventoryValue
		stats.TotalExpiryRiskValue += m.ExpiryRiskValue

		switch {
		case m.RiskScore > 70:
			stats.HighRiskSuppliers++
		case m.RiskScore > 50:
			stats.ModerateRiskSuppliers++
		default:
			stats.LowRiskSuppliers++
		}
	}
	stats.AvgReliabilityScore /= float64(len(metrics))
	stats.AvgDeliveryTimeDays /= float64(len(metrics))

	return stats
}
