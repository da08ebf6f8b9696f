// Package report renders the analytics results as plain-text tables for
// the CLI and exports selected tables as CSV.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/schedule"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/seasonal"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/supplier"
)

// Renderer writes report sections to a single output stream.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) heading(title string) {
	fmt.Fprintf(r.w, "\n=== %s ===\n\n", title)
}

func (r *Renderer) table(write func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	write(tw)
	tw.Flush()
}

// Waste renders the at-risk product table and its headline numbers.
func (r *Renderer) Waste(atRisk []domain.Product, totalProducts int) {
	r.heading("Waste Risk")

	atRiskValue := 0.0
	for _, p := range atRisk {
		atRiskValue += p.InventoryValue()
	}
	fmt.Fprintf(r.w, "Products analyzed: %d\n", totalProducts)
	fmt.Fprintf(r.w, "At risk of expiry: %d\n", len(atRisk))
	fmt.Fprintf(r.w, "Inventory value at risk: $%.2f\n\n", atRiskValue)

	if len(atRisk) == 0 {
		fmt.Fprintln(r.w, "No products currently at risk.")
		return
	}

	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "PRODUCT\tCATEGORY\tDAYS LEFT\tSTOCK\tAVG DAILY SALES\tRISK SCORE\tPRIORITY")
		for _, p := range atRisk {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\t%.1f\t%s\n",
				p.Name, p.Category, p.DaysToExpiry, p.QuantityInStock,
				p.AvgDailySales30d, p.RiskScore,
				p.ExpiryType.Priority().String())
		}
	})
}

// Schedule renders the 24-hour energy schedule next to the footfall that
// produced it.
func (r *Renderer) Schedule(hours []domain.ScheduleHour, footfall schedule.Footfall, reductionPct int) {
	r.heading("Energy Schedule")

	fmt.Fprintf(r.w, "Footfall records: %d\n\n", footfall.Total())
	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "HOUR\tFOOTFALL\tSETTING\tREASON")
		for _, h := range hours {
			fmt.Fprintf(tw, "%02d:00\t%d\t%s\t%s\n",
				h.Hour, footfall[h.Hour], h.Setting.Label(reductionPct), h.Reason)
		}
	})
}

// GreenScore renders the composite sustainability score and its components.
func (r *Renderer) GreenScore(final, wasteScore, energyScore, wasteValue, totalValue, energySavedKWh, costSaved float64) {
	r.heading("GreenScore")

	fmt.Fprintf(r.w, "GreenScore: %.1f / 100\n\n", final)
	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "COMPONENT\tSCORE\tDETAIL")
		fmt.Fprintf(tw, "Waste\t%.1f\t$%.2f at risk of $%.2f inventory\n", wasteScore, wasteValue, totalValue)
		fmt.Fprintf(tw, "Energy\t%.1f\t%.1f kWh saved ($%.2f/day)\n", energyScore, energySavedKWh, costSaved)
	})
}

// Suppliers renders per-supplier metrics, the overview and recommendations.
func (r *Renderer) Suppliers(metrics []supplier.Metrics, stats supplier.SummaryStats, recs []supplier.Recommendation) {
	r.heading("Supplier Risk")

	fmt.Fprintf(r.w, "Suppliers: %d (high risk: %d, moderate: %d, low: %d)\n",
		stats.TotalSuppliers, stats.HighRiskSuppliers, stats.ModerateRiskSuppliers, stats.LowRiskSuppliers)
	fmt.Fprintf(r.w, "Avg reliability: %.2f, avg delivery: %.1f days\n", stats.AvgReliabilityScore, stats.AvgDeliveryTimeDays)
	fmt.Fprintf(r.w, "Inventory value: $%.2f, expiry exposure: $%.2f\n\n", stats.TotalInventoryValue, stats.TotalExpiryRiskValue)

	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "SUPPLIER\tRELIABILITY\tDELIVERY DAYS\tPRODUCTS\tINVENTORY VALUE\tEXPIRY RISK\tRISK SCORE")
		for _, m := range metrics {
			fmt.Fprintf(tw, "%s\t%.2f\t%d\t%d\t$%.2f\t$%.2f\t%.1f\n",
				m.SupplierName, m.ReliabilityScore, m.DeliveryTimeDays,
				m.TotalProducts, m.TotalInventoryValue, m.ExpiryRiskValue, m.RiskScore)
		}
	})

	if len(recs) > 0 {
		fmt.Fprintln(r.w, "\nRecommendations:")
		for _, rec := range recs {
			fmt.Fprintf(r.w, "  [%s] %s: %s (%s)\n", rec.Priority, rec.SupplierName, rec.Recommendation, rec.Issue)
		}
	}
}

// Seasonal renders trend aggregates, the demand forecast, the efficiency
// score and seasonal recommendations.
func (r *Renderer) Seasonal(trends seasonal.Trends, forecasts []seasonal.Forecast, efficiency int, recs []seasonal.Recommendation) {
	r.heading("Seasonal Analytics")

	fmt.Fprintf(r.w, "Seasonal efficiency score: %d / 100\n\n", efficiency)

	r.table(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "SEASON\tUNITS SOLD\tTRANSACTIONS")
		for _, season := range []domain.Season{domain.SeasonWinter, domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall} {
			stats := trends.Seasonal[season]
			fmt.Fprintf(tw, "%s\t%d\t%d\n", season, stats.QuantitySold, stats.Transactions)
		}
	})

	if len(forecasts) > 0 {
		fmt.Fprintln(r.w, "\nDemand forecast:")
		r.table(func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "CATEGORY\tMONTH\tSEASON\tDAILY RATE\tFORECASTED UNITS")
			for _, f := range forecasts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.1f\n",
					f.Category, f.Month, f.Season, f.DailyRate, f.ForecastedSales)
			}
		})
	}

	if len(recs) > 0 {
		fmt.Fprintln(r.w, "\nRecommendations:")
		for _, rec := range recs {
			fmt.Fprintf(r.w, "  [%s] %s: %s (%s)\n", rec.Priority, rec.Category, rec.Recommendation, rec.Issue)
		}
	}
}

// Timestamp writes the report generation time header.
func (r *Renderer) Timestamp(now time.Time) {
	fmt.Fprintf(r.w, "Store analytics report, generated %s\n", now.Format("2006-01-02 15:04"))
}
