package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/seasonal"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/supplier"
)

// ExportAtRisk writes the flagged products to at_risk_products.csv in dir.
func ExportAtRisk(dir string, atRisk []domain.Product) error {
	rows := make([][]string, 0, len(atRisk))
	for _, p := range atRisk {
		rows = append(rows, []string{
			p.ID, p.Name, string(p.Category),
			strconv.Itoa(p.DaysToExpiry),
			strconv.Itoa(p.QuantityInStock),
			strconv.FormatFloat(p.AvgDailySales30d, 'f', 2, 64),
			strconv.FormatFloat(p.EstDaysStockLeft, 'f', 1, 64),
			strconv.FormatFloat(p.RiskScore, 'f', 1, 64),
			p.ExpiryType.Priority().String(),
			strconv.FormatFloat(p.InventoryValue(), 'f', 2, 64),
		})
	}
	return exportCSV(dir, "at_risk_products.csv",
		[]string{"product_id", "product_name", "category", "days_to_expiry",
			"quantity_in_stock", "avg_daily_sales_30d", "est_days_stock_left",
			"risk_score", "priority", "inventory_value"},
		rows)
}

// ExportSupplierMetrics writes supplier_metrics.csv in dir.
func ExportSupplierMetrics(dir string, metrics []supplier.Metrics) error {
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{
			m.SupplierID, m.SupplierName,
			strconv.FormatFloat(m.ReliabilityScore, 'f', 2, 64),
			strconv.Itoa(m.DeliveryTimeDays),
			strconv.Itoa(m.TotalProducts),
			strconv.FormatFloat(m.TotalInventoryValue, 'f', 2, 64),
			strconv.FormatFloat(m.ExpiryRiskValue, 'f', 2, 64),
			strconv.FormatFloat(m.RiskScore, 'f', 1, 64),
		})
	}
	return exportCSV(dir, "supplier_metrics.csv",
		[]string{"supplier_id", "supplier_name", "reliability_score",
			"delivery_time_days", "total_products", "total_inventory_value",
			"expiry_risk_value", "risk_score"},
		rows)
}

// ExportForecast writes demand_forecast.csv in dir.
func ExportForecast(dir string, forecasts []seasonal.Forecast) error {
	rows := make([][]string, 0, len(forecasts))
	for _, f := range forecasts {
		rows = append(rows, []string{
			string(f.Category), f.Month.String(), string(f.Season),
			strconv.FormatFloat(f.DailyRate, 'f', 3, 64),
			strconv.FormatFloat(f.ForecastedSales, 'f', 1, 64),
		})
	}
	return exportCSV(dir, "demand_forecast.csv",
		[]string{"category", "month", "season", "daily_rate", "forecasted_sales"},
		rows)
}

func exportCSV(dir, name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}

	log.Debug().Str("file", path).Int("rows", len(rows)).Msg("exported CSV")
	return nil
}
