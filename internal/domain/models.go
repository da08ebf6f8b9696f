// backend-go/internal/domain/models.go
package domain

import "time"

// Product represents one inventory row. The waste risk engine enriches a
// copy with the computed fields; loaded products are never written back.
type Product struct {
	ID                   string     `json:"product_id"`
	Name                 string     `json:"product_name"`
	Category             Category   `json:"category"`
	SupplierID           string     `json:"supplier_id"`
	PurchaseDate         time.Time  `json:"purchase_date"`
	ExpiryDate           time.Time  `json:"expiry_date"`
	ExpiryType           ExpiryType `json:"expiry_type"`
	QuantityInStock      int        `json:"quantity_in_stock"`
	CostPrice            float64    `json:"cost_price"`
	SellingPrice         float64    `json:"selling_price"`
	SeasonalDemandFactor float64    `json:"seasonal_demand_factor"`

	// Computed by the waste risk engine.
	DaysToExpiry     int     `json:"days_to_expiry"`
	AvgDailySales30d float64 `json:"avg_daily_sales_last_30d"`
	EstDaysStockLeft float64 `json:"estimated_days_stock_left"`
	RiskThreshold    float64 `json:"risk_threshold"`
	RiskScore        float64 `json:"risk_score"`
	AtRiskOfExpiry   bool    `json:"at_risk_of_expiry"`
}

// InventoryValue returns the stock valuation at cost.
func (p Product) InventoryValue() float64 {
	return p.CostPrice * float64(p.QuantityInStock)
}

// Sale is a single sales transaction. Immutable once loaded.
type Sale struct {
	TransactionID string    `json:"transaction_id,omitempty"`
	ProductID     string    `json:"product_id"`
	Timestamp     time.Time `json:"timestamp"`
	QuantitySold  int       `json:"quantity_sold"`
}

// Supplier represents one supplier master row.
type Supplier struct {
	ID               string  `json:"supplier_id"`
	Name             string  `json:"supplier_name"`
	ReliabilityScore float64 `json:"reliability_score"`
	DeliveryTimeDays int     `json:"delivery_time_days"`
	ContactEmail     string  `json:"contact_email,omitempty"`
	Phone            string  `json:"phone,omitempty"`
}

// EmployeeShift is one scheduled shift. Only the generator produces these;
// the analytics engines take store hours from configuration instead.
type EmployeeShift struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	ShiftStart string `json:"shift_start_time"`
	ShiftEnd   string `json:"shift_end_time"`
}
