// Package loader reads the inventory, sales and supplier snapshots from CSV
// into in-memory tables. Column names are matched loosely and malformed
// numeric fields coerce to zero; only a missing file is an error.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// Dataset bundles the three loaded tables.
type Dataset struct {
	Products  []domain.Product
	Sales     []domain.Sale
	Suppliers []domain.Supplier
}

// LoadAll reads inventory.csv, sales.csv and suppliers.csv from dataDir.
func LoadAll(dataDir string) (*Dataset, error) {
	products, err := LoadInventory(filepath.Join(dataDir, "inventory.csv"))
	if err != nil {
		return nil, err
	}
	sales, err := LoadSales(filepath.Join(dataDir, "sales.csv"))
	if err != nil {
		return nil, err
	}
	suppliers, err := LoadSuppliers(filepath.Join(dataDir, "suppliers.csv"))
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("products", len(products)).
		Int("sales", len(sales)).
		Int("suppliers", len(suppliers)).
		Str("dir", dataDir).
		Msg("loaded data tables")

	return &Dataset{Products: products, Sales: sales, Suppliers: suppliers}, nil
}

// LoadInventory reads product rows.
func LoadInventory(path string) ([]domain.Product, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idx := newColumnIndex(header)
	idID := idx.find("product_id", "id")
	idName := idx.find("product_name", "name")
	idCategory := idx.find("category")
	idSupplier := idx.find("supplier_id")
	idPurchase := idx.find("purchase_date")
	idExpiry := idx.find("expiry_date")
	idExpiryType := idx.find("expiry_type")
	idQty := idx.find("quantity_in_stock", "stock")
	idCost := idx.find("cost_price")
	idSell := idx.find("selling_price")
	idFactor := idx.find("seasonal_demand_factor")

	products := make([]domain.Product, 0, len(rows))
	for _, record := range rows {
		p := domain.Product{
			ID:                   getField(record, idID),
			Name:                 getField(record, idName),
			Category:             domain.Category(getField(record, idCategory)),
			SupplierID:           getField(record, idSupplier),
			PurchaseDate:         parseDate(getField(record, idPurchase)),
			ExpiryDate:           parseDate(getField(record, idExpiry)),
			ExpiryType:           domain.ExpiryType(getField(record, idExpiryType)),
			QuantityInStock:      parseInt(getField(record, idQty)),
			CostPrice:            parseFloat(getField(record, idCost)),
			SellingPrice:         parseFloat(getField(record, idSell)),
			SeasonalDemandFactor: parseFloat(getField(record, idFactor)),
		}
		if p.QuantityInStock < 0 {
			p.QuantityInStock = 0
		}
		products = append(products, p)
	}

	return products, nil
}

// LoadSales reads sale transaction rows.
func LoadSales(path string) ([]domain.Sale, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idx := newColumnIndex(header)
	idTx := idx.find("transaction_id")
	idProduct := idx.find("product_id")
	idTimestamp := idx.find("timestamp")
	idQty := idx.find("quantity_sold", "quantity")

	sales := make([]domain.Sale, 0, len(rows))
	for _, record := range rows {
		qty := parseInt(getField(record, idQty))
		if qty <= 0 {
			continue
		}
		sales = append(sales, domain.Sale{
			TransactionID: getField(record, idTx),
			ProductID:     getField(record, idProduct),
			Timestamp:     parseDate(getField(record, idTimestamp)),
			QuantitySold:  qty,
		})
	}

	return sales, nil
}

// LoadSuppliers reads supplier master rows.
func LoadSuppliers(path string) ([]domain.Supplier, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idx := newColumnIndex(header)
	idID := idx.find("supplier_id", "id")
	idName := idx.find("supplier_name", "name")
	idReliability := idx.find("reliability_score")
	idDelivery := idx.find("delivery_time_days")
	idEmail := idx.find("contact_email")
	idPhone := idx.find("phone")

	suppliers := make([]domain.Supplier, 0, len(rows))
	for _, record := range rows {
		suppliers = append(suppliers, domain.Supplier{
			ID:               getField(record, idID),
			Name:             getField(record, idName),
			ReliabilityScore: parseFloat(getField(record, idReliability)),
			DeliveryTimeDays: parseInt(getField(record, idDelivery)),
			ContactEmail:     getField(record, idEmail),
			Phone:            getField(record, idPhone),
		})
	}

	return suppliers, nil
}

func readCSV(path string) ([][]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header of %s: %w", path, err)
	}

	rows := make([][]string, 0)
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("failed to read CSV record in %s: %w", path, err)
		}
		rows = append(rows, record)
	}

	return rows, header, nil
}

type columnIndex struct {
	byName map[string]int
}

func newColumnIndex(header []string) columnIndex {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[normalizeColumnName(h)] = i
	}
	return columnIndex{byName: byName}
}

// find returns the index of the first matching column name, or -1.
func (c columnIndex) find(names ...string) int {
	for _, name := range names {
		if i, ok := c.byName[normalizeColumnName(name)]; ok {
			return i
		}
	}
	return -1
}

var columnNameSanitizer = strings.NewReplacer(" ", "", "_", "", ".", "", "-", "")

func normalizeColumnName(name string) string {
	return columnNameSanitizer.Replace(strings.TrimSpace(strings.ToLower(name)))
}

func getField(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseFloat(v string) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(v string) int {
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Some feeds export integer quantities with a decimal point.
		return int(parseFloat(v))
	}
	return n
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// parseDate tries the known layouts and degrades to the zero time on
// failure rather than erroring out.
func parseDate(v string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
