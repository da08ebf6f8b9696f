package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
)

// WriteCSVs writes the data set into dir as inventory.csv, sales.csv,
// suppliers.csv and employee_schedules.csv, creating dir if needed.
func WriteCSVs(ds *Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	if err := writeCSV(filepath.Join(dir, "suppliers.csv"),
		[]string{"supplier_id", "supplier_name", "reliability_score", "delivery_time_days", "contact_email", "phone"},
		len(ds.Suppliers), func(i int) []string {
			s := ds.Suppliers[i]
			return []string{
				s.ID, s.Name,
				formatFloat(s.ReliabilityScore),
				strconv.Itoa(s.DeliveryTimeDays),
				s.ContactEmail, s.Phone,
			}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "inventory.csv"),
		[]string{"product_id", "product_name", "category", "supplier_id", "purchase_date",
			"expiry_date", "expiry_type", "quantity_in_stock", "cost_price", "selling_price",
			"seasonal_demand_factor"},
		len(ds.Products), func(i int) []string {
			p := ds.Products[i]
			return []string{
				p.ID, p.Name, string(p.Category), p.SupplierID,
				p.PurchaseDate.Format("2006-01-02"),
				p.ExpiryDate.Format("2006-01-02"),
				string(p.ExpiryType),
				strconv.Itoa(p.QuantityInStock),
				formatFloat(p.CostPrice),
				formatFloat(p.SellingPrice),
				formatFloat(p.SeasonalDemandFactor),
			}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "sales.csv"),
		[]string{"transaction_id", "product_id", "timestamp", "quantity_sold"},
		len(ds.Sales), func(i int) []string {
			s := ds.Sales[i]
			return []string{
				s.TransactionID, s.ProductID,
				s.Timestamp.Format("2006-01-02 15:04:05"),
				strconv.Itoa(s.QuantitySold),
			}
		}); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "employee_schedules.csv"),
		[]string{"employee_id", "date", "shift_start_time", "shift_end_time"},
		len(ds.Shifts), func(i int) []string {
			sh := ds.Shifts[i]
			return []string{sh.EmployeeID, sh.Date, sh.ShiftStart, sh.ShiftEnd}
		}); err != nil {
		return err
	}

	log.Info().
		Int("products", len(ds.Products)).
		Int("sales", len(ds.Sales)).
		Int("suppliers", len(ds.Suppliers)).
		Int("shifts", len(ds.Shifts)).
		Str("dir", dir).
		Msg("wrote generated data set")

	return nil
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
