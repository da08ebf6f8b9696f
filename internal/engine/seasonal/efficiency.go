package seasonal

import (
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

const (
	highSeasonalFactor    = 1.2
	lowSeasonSalesMean    = 50
	lowTurnoverRatio      = 0.1
	lowStockThreshold     = 100
	underperformanceShare = 0.5
)

// EfficiencyScore rates how well the store manages seasonal inventory,
// starting from 100 and deducting fixed penalties: 20 when high-seasonal
// categories sell poorly in the current season, 15 for low overall
// inventory turnover, 15 when the average seasonal demand factor sits below
// baseline. Floored at 0.
func EfficiencyScore(products []domain.Product, sales []domain.Sale, now time.Time) int {
	if len(products) == 0 || len(sales) == 0 {
		return 0
	}

	trends := AnalyzeTrends(sales, products)
	currentSeason := domain.SeasonForMonth(now.Month())
	score := 100

	if mean, ok := highSeasonalSalesMean(products, trends, currentSeason); ok && mean < lowSeasonSalesMean {
		score -= 20
	}

	totalStock := 0
	factorSum := 0.0
	for _, p := range products {
		totalStock += p.QuantityInStock
		factorSum += p.SeasonalDemandFactor
	}
	totalSold := 0
	for _, s := range sales {
		totalSold += s.QuantitySold
	}
	if totalStock > 0 && float64(totalSold)/float64(totalStock) < lowTurnoverRatio {
		score -= 15
	}

	if factorSum/float64(len(products)) < 1.0 {
		score -= 15
	}

	if score < 0 {
		score = 0
	}
	return score
}

// highSeasonalSalesMean averages current-season sales across categories
// that carry a high seasonal demand factor and actually sold this season.
func highSeasonalSalesMean(products []domain.Product, trends Trends, season domain.Season) (float64, bool) {
	high := make(map[domain.Category]bool)
	for _, p := range products {
		if p.SeasonalDemandFactor > highSeasonalFactor {
			high[p.Category] = true
		}
	}

	sum, n := 0, 0
	for category := range high {
		if qty, ok := trends.CategorySeason[category][season]; ok {
			sum += qty
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Recommendation is one seasonal inventory finding.
type Recommendation struct {
	Category       domain.Category `json:"category"`
	Issue          string          `json:"issue"`
	Recommendation string          `json:"recommendation"`
	Priority       string          `json:"priority"`
}

// Recommendations surfaces categories underperforming in the current season
// and high-seasonal categories running low on stock.
func Recommendations(products []domain.Product, sales []domain.Sale, now time.Time) []Recommendation {
	if len(products) == 0 || len(sales) == 0 {
		return nil
	}

	trends := AnalyzeTrends(sales, products)
	currentSeason := domain.SeasonForMonth(now.Month())
	recs := make([]Recommendation, 0)

	// Categories selling at less than half the current-season average.
	seasonSales := make(map[domain.Category]int)
	sum, n := 0, 0
	for category, bySeason := range trends.CategorySeason {
		if qty, ok := bySeason[currentSeason]; ok {
			seasonSales[category] = qty
			sum += qty
			n++
		}
	}
	if n > 0 {
		avg := float64(sum) / float64(n)
		for _, category := range presentCategories(products) {
			qty, ok := seasonSales[category]
			if !ok {
				continue
			}
			if float64(qty) < avg*underperformanceShare {
				recs = append(recs, Recommendation{
					Category: category,
					Issue:    "Low Seasonal Sales",
					Recommendation: "Consider promotional pricing for " + string(category) +
						" during " + string(currentSeason) + " to boost sales.",
					Priority: "Medium",
				})
			}
		}
	}

	// High-seasonal categories without the stock to meet that demand.
	factors := categoryFactors(products)
	stock := make(map[domain.Category]int)
	for _, p := range products {
		stock[p.Category] += p.QuantityInStock
	}
	for _, category := range presentCategories(products) {
		if factors[category] > highSeasonalFactor && stock[category] < lowStockThreshold {
			recs = append(recs, Recommendation{
				Category: category,
				Issue:    "Seasonal Stock Shortage",
				Recommendation: "Increase stock levels for " + string(category) + " during " +
					string(currentSeason) + " to meet seasonal demand.",
				Priority: "High",
			})
		}
	}

	return recs
}
