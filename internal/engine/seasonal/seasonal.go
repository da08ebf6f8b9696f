// Package seasonal aggregates sales by calendar season and forecasts
// near-term category demand from historical monthly rates.
package seasonal

import (
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// PeriodStats is the sales aggregate for one month or season.
type PeriodStats struct {
	QuantitySold int `json:"quantity_sold"`
	Transactions int `json:"transaction_count"`
}

// Trends holds the sales history aggregated three ways: by calendar month,
// by season, and by (category, season).
type Trends struct {
	Monthly        map[time.Month]PeriodStats
	Seasonal       map[domain.Season]PeriodStats
	CategorySeason map[domain.Category]map[domain.Season]int
}

// AnalyzeTrends aggregates the sales history. Sales referencing unknown
// products still count towards the monthly and seasonal totals but cannot
// be attributed to a category.
func AnalyzeTrends(sales []domain.Sale, products []domain.Product) Trends {
	categoryOf := make(map[string]domain.Category, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}

	trends := Trends{
		Monthly:        make(map[time.Month]PeriodStats),
		Seasonal:       make(map[domain.Season]PeriodStats),
		CategorySeason: make(map[domain.Category]map[domain.Season]int),
	}

	for _, s := range sales {
		month := s.Timestamp.Month()
		season := domain.SeasonForMonth(month)

		m := trends.Monthly[month]
		m.QuantitySold += s.QuantitySold
		m.Transactions++
		trends.Monthly[month] = m

		sn := trends.Seasonal[season]
		sn.QuantitySold += s.QuantitySold
		sn.Transactions++
		trends.Seasonal[season] = sn

		if category, ok := categoryOf[s.ProductID]; ok {
			if trends.CategorySeason[category] == nil {
				trends.CategorySeason[category] = make(map[domain.Season]int)
			}
			trends.CategorySeason[category][season] += s.QuantitySold
		}
	}

	return trends
}

// Forecast is the projected demand for one category in one upcoming month.
type Forecast struct {
	Category        domain.Category `json:"category"`
	Month           time.Month      `json:"month"`
	Season          domain.Season   `json:"season"`
	DailyRate       float64         `json:"daily_rate"`
	ForecastedSales float64         `json:"forecasted_sales"`
}

// ForecastDemand projects monthly sales per category for the next `months`
// months. Each (category, month) pair uses its historical daily rate when
// one exists, otherwise the category's average rate across all months; the
// rate is then scaled by the category's average seasonal demand factor and
// the number of days in the forecast month.
func ForecastDemand(products []domain.Product, sales []domain.Sale, now time.Time, months int) []Forecast {
	if len(products) == 0 || len(sales) == 0 || months <= 0 {
		return nil
	}

	rates := historicalDailyRates(products, sales)
	factors := categoryFactors(products)

	// Category-wide fallback rates, computed once per category.
	fallback := make(map[domain.Category]float64)
	for category, byMonth := range rates {
		sum, n := 0.0, 0
		for _, rate := range byMonth {
			sum += rate
			n++
		}
		if n > 0 {
			fallback[category] = sum / float64(n)
		}
	}

	present := presentCategories(products)

	forecasts := make([]Forecast, 0, months*len(present))
	for i := 1; i <= months; i++ {
		year, month := addMonths(now, i)
		season := domain.SeasonForMonth(month)
		days := daysInMonth(year, month)

		for _, category := range present {
			rate, ok := rates[category][month]
			if !ok {
				rate = fallback[category]
			}

			daily := rate * factors[category]
			forecasts = append(forecasts, Forecast{
				Category:        category,
				Month:           month,
				Season:          season,
				DailyRate:       daily,
				ForecastedSales: daily * float64(days),
			})
		}
	}

	return forecasts
}

// historicalDailyRates estimates a per-(category, month) daily sales rate by
// spreading the observed sales span evenly across twelve months.
func historicalDailyRates(products []domain.Product, sales []domain.Sale) map[domain.Category]map[time.Month]float64 {
	categoryOf := make(map[string]domain.Category, len(products))
	for _, p := range products {
		categoryOf[p.ID] = p.Category
	}

	totals := make(map[domain.Category]map[time.Month]int)
	first, last := sales[0].Timestamp, sales[0].Timestamp
	for _, s := range sales {
		if s.Timestamp.Before(first) {
			first = s.Timestamp
		}
		if s.Timestamp.After(last) {
			last = s.Timestamp
		}
		category, ok := categoryOf[s.ProductID]
		if !ok {
			continue
		}
		if totals[category] == nil {
			totals[category] = make(map[time.Month]int)
		}
		totals[category][s.Timestamp.Month()] += s.QuantitySold
	}

	totalDays := last.Sub(first).Hours() / 24
	if totalDays < 1 {
		totalDays = 1
	}
	daysPerMonth := totalDays / 12

	rates := make(map[domain.Category]map[time.Month]float64, len(totals))
	for category, byMonth := range totals {
		rates[category] = make(map[time.Month]float64, len(byMonth))
		for month, qty := range byMonth {
			rates[category][month] = float64(qty) / daysPerMonth
		}
	}

	return rates
}

func categoryFactors(products []domain.Product) map[domain.Category]float64 {
	sums := make(map[domain.Category]float64)
	counts := make(map[domain.Category]int)
	for _, p := range products {
		sums[p.Category] += p.SeasonalDemandFactor
		counts[p.Category]++
	}

	factors := make(map[domain.Category]float64, len(sums))
	for category, sum := range sums {
		factors[category] = sum / float64(counts[category])
	}
	return factors
}

// presentCategories returns the known categories that appear in inventory,
// in the canonical order.
func presentCategories(products []domain.Product) []domain.Category {
	seen := make(map[domain.Category]bool, len(products))
	for _, p := range products {
		seen[p.Category] = true
	}

	present := make([]domain.Category, 0, len(seen))
	for _, category := range domain.Categories {
		if seen[category] {
			present = append(present, category)
		}
	}
	return present
}

func addMonths(now time.Time, offset int) (int, time.Month) {
	total := int(now.Month()) + offset
	year := now.Year() + (total-1)/12
	month := time.Month((total-1)%12 + 1)
	return year, month
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
