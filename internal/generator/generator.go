// Package generator produces synthetic but realistic store data sets for
// demos and tests: products with category-appropriate expiry windows and
// margins, sales with lunch and evening peaks, suppliers and shifts.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// Config controls the size and shape of a generated data set.
type Config struct {
	NumProducts  int
	NumSuppliers int
	NumEmployees int
	HistoryDays  int
	OpenHour     int
	CloseHour    int
	Seed         int64
}

func (c Config) withDefaults() Config {
	if c.NumProducts <= 0 {
		c.NumProducts = 150
	}
	if c.NumSuppliers <= 0 {
		c.NumSuppliers = 20
	}
	if c.NumEmployees <= 0 {
		c.NumEmployees = 15
	}
	if c.HistoryDays <= 0 {
		c.HistoryDays = 60
	}
	if c.CloseHour <= 0 {
		c.OpenHour = 8
		c.CloseHour = 22
	}
	return c
}

// Generator builds a deterministic data set from a seeded source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config) *Generator {
	cfg = cfg.withDefaults()
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// Dataset holds everything a generated store snapshot contains.
type Dataset struct {
	Products  []domain.Product
	Sales     []domain.Sale
	Suppliers []domain.Supplier
	Shifts    []domain.EmployeeShift
}

// Generate produces the full data set with sales history ending at now.
func (g *Generator) Generate(now time.Time) *Dataset {
	suppliers := g.suppliers()
	products := g.products(now, suppliers)
	sales := g.sales(now, products)
	shifts := g.shifts(now)
	return &Dataset{Products: products, Sales: sales, Suppliers: suppliers, Shifts: shifts}
}

var supplierNames = []string{
	"Global Electronics Corp", "Fashion Forward Ltd", "Fresh Foods Inc", "Home Essentials Co",
	"BookWorld Publishers", "Beauty & Beyond", "Sports Gear Pro", "Tech Solutions Ltd",
	"Style & Co", "Organic Harvest", "Living Spaces", "Knowledge Hub",
	"Glow & Grace", "Active Lifestyle", "Digital Dynamics", "Trendy Threads",
	"Farm Fresh", "Comfort Zone", "Literary Corner", "Wellness World",
}

func (g *Generator) suppliers() []domain.Supplier {
	suppliers := make([]domain.Supplier, 0, g.cfg.NumSuppliers)
	for i := 0; i < g.cfg.NumSuppliers; i++ {
		name := fmt.Sprintf("Supplier %d", i+1)
		if i < len(supplierNames) {
			name = supplierNames[i]
		}
		suppliers = append(suppliers, domain.Supplier{
			ID:               fmt.Sprintf("S%03d", i),
			Name:             name,
			ReliabilityScore: round2(g.uniform(0.7, 1.0)),
			DeliveryTimeDays: 1 + g.rng.Intn(13),
			ContactEmail:     emailFor(name),
			Phone:            fmt.Sprintf("+1-555-%03d-%04d", 100+g.rng.Intn(899), 1000+g.rng.Intn(8999)),
		})
	}
	return suppliers
}

var productNames = map[domain.Category][]string{
	domain.CategoryElectronics: {
		"Wireless Bluetooth Headphones", "Smartphone Charger Cable", "USB-C Power Adapter",
		"Wireless Mouse", "Bluetooth Speaker", "Phone Stand", "Laptop Cooling Pad",
		"HDMI Cable", "Memory Card 64GB", "Portable Power Bank", "Webcam HD",
		"Wireless Keyboard", "Gaming Mouse Pad", "Phone Screen Protector",
		"USB Flash Drive 32GB", "Wireless Earbuds", "Tablet Stand", "Cable Organizer",
	},
	domain.CategoryClothing: {
		"Cotton T-Shirt", "Denim Jeans", "Hooded Sweatshirt", "Polo Shirt",
		"Casual Dress", "Formal Shirt", "Winter Jacket", "Summer Shorts",
		"Athletic Leggings", "Business Blazer", "Casual Blouse", "Knit Sweater",
		"Denim Jacket", "Pajama Set", "Swimwear", "Formal Pants",
	},
	domain.CategoryGroceries: {
		"Organic Bananas", "Fresh Milk 2L", "Whole Grain Bread", "Free-Range Eggs",
		"Greek Yogurt", "Organic Spinach", "Cherry Tomatoes", "Avocados",
		"Chicken Breast", "Salmon Fillet", "Brown Rice", "Quinoa",
		"Almond Milk", "Cheddar Cheese", "Bell Peppers", "Sweet Potatoes",
	},
	domain.CategoryHomeGoods: {
		"Kitchen Towel Set", "Bath Towel", "Bed Sheet Set", "Pillow Cases",
		"Coffee Mug Set", "Dinner Plate Set", "Glass Water Bottle", "Storage Containers",
		"Kitchen Utensils", "Bathroom Rug", "Shower Curtain", "Laundry Basket",
		"Trash Can", "Desk Lamp", "Wall Clock", "Picture Frame",
	},
	domain.CategoryBooks: {
		"The Great Gatsby", "To Kill a Mockingbird", "1984", "Pride and Prejudice",
		"The Catcher in the Rye", "Lord of the Flies", "Animal Farm", "Brave New World",
		"The Hobbit", "The Alchemist", "Atomic Habits", "Deep Work",
	},
	domain.CategoryBeauty: {
		"Facial Cleanser", "Moisturizing Cream", "Sunscreen SPF 50", "Shampoo",
		"Conditioner", "Toothpaste", "Deodorant", "Hand Lotion",
		"Lip Balm", "Face Mask", "Vitamin C Serum", "Eye Cream",
	},
	domain.CategorySports: {
		"Yoga Mat", "Dumbbells Set", "Resistance Bands", "Jump Rope",
		"Water Bottle", "Gym Bag", "Running Shorts", "Athletic Socks",
		"Tennis Racket", "Basketball", "Camping Tent", "Hiking Boots",
	},
}

type priceRange struct{ lo, hi float64 }

var costRanges = map[domain.Category]priceRange{
	domain.CategoryElectronics: {15.0, 200.0},
	domain.CategoryClothing:    {8.0, 80.0},
	domain.CategoryGroceries:   {2.0, 25.0},
	domain.CategoryHomeGoods:   {5.0, 100.0},
	domain.CategoryBooks:       {5.0, 30.0},
	domain.CategoryBeauty:      {3.0, 50.0},
	domain.CategorySports:      {10.0, 150.0},
}

var markupRanges = map[domain.Category]priceRange{
	domain.CategoryElectronics: {1.3, 1.8},
	domain.CategoryClothing:    {1.4, 2.2},
	domain.CategoryGroceries:   {1.2, 1.6},
	domain.CategoryHomeGoods:   {1.3, 1.9},
	domain.CategoryBooks:       {1.2, 1.5},
	domain.CategoryBeauty:      {1.4, 2.0},
	domain.CategorySports:      {1.3, 1.8},
}

func (g *Generator) products(now time.Time, suppliers []domain.Supplier) []domain.Product {
	products := make([]domain.Product, 0, g.cfg.NumProducts)
	for i := 0; i < g.cfg.NumProducts; i++ {
		category := domain.Categories[g.rng.Intn(len(domain.Categories))]
		names := productNames[category]

		var purchaseDaysAgo int
		if g.rng.Float64() < 0.3 {
			purchaseDaysAgo = 1 + g.rng.Intn(29)
		} else {
			purchaseDaysAgo = 30 + g.rng.Intn(60)
		}
		purchaseDate := now.AddDate(0, 0, -purchaseDaysAgo)
		expiryDate := purchaseDate.AddDate(0, 0, g.expiryDays(category))

		cost := costRanges[category]
		costPrice := round2(g.uniform(cost.lo, cost.hi))
		markup := markupRanges[category]
		sellingPrice := round2(costPrice * g.uniform(markup.lo, markup.hi))

		products = append(products, domain.Product{
			ID:                   fmt.Sprintf("P%04d", i),
			Name:                 names[g.rng.Intn(len(names))],
			Category:             category,
			SupplierID:           suppliers[g.rng.Intn(len(suppliers))].ID,
			PurchaseDate:         purchaseDate,
			ExpiryDate:           expiryDate,
			ExpiryType:           domain.ExpiryTypeForCategory(category),
			QuantityInStock:      g.stockLevel(category),
			CostPrice:            costPrice,
			SellingPrice:         sellingPrice,
			SeasonalDemandFactor: seasonalBoost(category, now.Month()),
		})
	}
	return products
}

// expiryDays draws a category-appropriate shelf window, skewed towards
// the near end so demo data always contains at-risk stock.
func (g *Generator) expiryDays(category domain.Category) int {
	pick := func(p []float64, ranges ...[2]int) int {
		r := ranges[g.weightedIndex(p)]
		return r[0] + g.rng.Intn(r[1]-r[0])
	}
	switch category {
	case domain.CategoryGroceries:
		return pick([]float64{0.5, 0.3, 0.2}, [2]int{1, 5}, [2]int{5, 10}, [2]int{10, 20})
	case domain.CategoryBeauty:
		return pick([]float64{0.4, 0.35, 0.25}, [2]int{10, 30}, [2]int{30, 60}, [2]int{60, 90})
	case domain.CategoryElectronics:
		return pick([]float64{0.2, 0.4, 0.4}, [2]int{30, 180}, [2]int{180, 365}, [2]int{365, 730})
	case domain.CategoryClothing:
		return pick([]float64{0.45, 0.35, 0.2}, [2]int{5, 15}, [2]int{15, 30}, [2]int{30, 60})
	case domain.CategoryHomeGoods, domain.CategorySports:
		return pick([]float64{0.25, 0.4, 0.35}, [2]int{90, 180}, [2]int{180, 365}, [2]int{365, 730})
	case domain.CategoryBooks:
		return pick([]float64{0.2, 0.4, 0.4}, [2]int{180, 365}, [2]int{365, 730}, [2]int{730, 1095})
	default:
		return pick([]float64{0.25, 0.4, 0.35}, [2]int{90, 180}, [2]int{180, 365}, [2]int{365, 730})
	}
}

func (g *Generator) stockLevel(category domain.Category) int {
	switch category {
	case domain.CategoryGroceries:
		return 20 + g.rng.Intn(280)
	case domain.CategoryElectronics:
		return 5 + g.rng.Intn(95)
	default:
		return 10 + g.rng.Intn(190)
	}
}

func seasonalBoost(category domain.Category, month time.Month) float64 {
	switch {
	case category == domain.CategoryClothing &&
		(month == time.March || month == time.April || month == time.September || month == time.October):
		return 1.3
	case category == domain.CategorySports &&
		month >= time.May && month <= time.August:
		return 1.4
	case category == domain.CategoryHomeGoods &&
		(month == time.November || month == time.December):
		return 1.2
	default:
		return 1.0
	}
}

type salesProfile struct {
	scenario   string
	baseDaily  float64
	volatility float64
}

func (g *Generator) salesProfile() salesProfile {
	scenarios := []string{"high_demand", "low_demand", "seasonal", "trending", "stagnant"}
	weights := []float64{0.2, 0.3, 0.2, 0.15, 0.15}
	switch scenarios[g.weightedIndex(weights)] {
	case "high_demand":
		return salesProfile{"high_demand", g.uniform(3.0, 8.0), 0.2}
	case "low_demand":
		return salesProfile{"low_demand", g.uniform(0.1, 1.0), 0.5}
	case "seasonal":
		return salesProfile{"seasonal", g.uniform(1.0, 4.0), 0.4}
	case "trending":
		return salesProfile{"trending", g.uniform(2.0, 6.0), 0.3}
	default:
		return salesProfile{"stagnant", g.uniform(0.05, 0.5), 0.6}
	}
}

func (g *Generator) sales(now time.Time, products []domain.Product) []domain.Sale {
	profiles := make(map[string]salesProfile, len(products))
	for _, p := range products {
		profiles[p.ID] = g.salesProfile()
	}

	start := now.AddDate(0, 0, -g.cfg.HistoryDays)
	var sales []domain.Sale
	for dayOffset := 0; dayOffset <= g.cfg.HistoryDays; dayOffset++ {
		day := start.AddDate(0, 0, dayOffset)
		for _, p := range products {
			profile := profiles[p.ID]

			trend := 1.0
			if profile.scenario == "trending" {
				trend = 1.0 + (float64(dayOffset)/float64(g.cfg.HistoryDays))*0.8
			}
			seasonal := 1.0
			if profile.scenario == "seasonal" {
				seasonal = 1.0 + 0.4*math.Sin(float64(dayOffset)*2*math.Pi/7)
			}

			expected := profile.baseDaily * trend * seasonal
			daily := math.Max(0, g.rng.NormFloat64()*expected*profile.volatility+expected)
			if daily <= 0 {
				continue
			}

			events := maxInt(1, int(daily/2)+g.rng.Intn(3))
			perEvent := maxInt(1, int(daily)/events)
			for e := 0; e < events; e++ {
				sales = append(sales, domain.Sale{
					TransactionID: g.transactionID(),
					ProductID:     p.ID,
					Timestamp:     g.saleTimestamp(day),
					QuantitySold:  perEvent,
				})
			}
		}
	}
	return sales
}

// transactionID draws a UUID from the seeded source so the whole data set,
// IDs included, reproduces for a given seed.
func (g *Generator) transactionID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand readers do not fail; keep the field non-empty anyway.
		return uuid.NewString()
	}
	return id.String()
}

// saleTimestamp draws an hour within opening time with lunch and evening
// peaks weighted double.
func (g *Generator) saleTimestamp(day time.Time) time.Time {
	open, close := g.cfg.OpenHour, g.cfg.CloseHour
	weights := make([]float64, close-open)
	for i := range weights {
		weights[i] = 1.0
		hour := open + i
		if (hour >= 12 && hour < 14) || (hour >= 17 && hour < 19) {
			weights[i] = 2.0
		}
	}
	hour := open + g.weightedIndex(weights)
	return time.Date(day.Year(), day.Month(), day.Day(),
		hour, g.rng.Intn(60), g.rng.Intn(60), 0, day.Location())
}

func (g *Generator) shifts(now time.Time) []domain.EmployeeShift {
	start := now.AddDate(0, 0, -g.cfg.HistoryDays)
	var shifts []domain.EmployeeShift
	for i := 0; i < g.cfg.NumEmployees; i++ {
		employeeID := fmt.Sprintf("E%03d", i)
		for dayOffset := 0; dayOffset <= g.cfg.HistoryDays; dayOffset++ {
			if g.rng.Float64() >= 5.0/7.0 {
				continue
			}
			day := start.AddDate(0, 0, dayOffset)

			var startHour, endHour int
			if g.rng.Float64() < 0.5 {
				startHour = g.cfg.OpenHour
				endHour = minInt(g.cfg.OpenHour+8, g.cfg.CloseHour)
			} else {
				startHour = maxInt(g.cfg.CloseHour-8, g.cfg.OpenHour)
				endHour = g.cfg.CloseHour
			}
			if startHour >= endHour {
				startHour, endHour = g.cfg.OpenHour, g.cfg.CloseHour
			}

			shifts = append(shifts, domain.EmployeeShift{
				EmployeeID: employeeID,
				Date:       day.Format("2006-01-02"),
				ShiftStart: fmt.Sprintf("%02d:00:00", startHour),
				ShiftEnd:   fmt.Sprintf("%02d:00:00", endHour),
			})
		}
	}
	return shifts
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// weightedIndex draws an index with probability proportional to weights.
func (g *Generator) weightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func emailFor(name string) string {
	cleaned := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r == '&':
			cleaned = append(cleaned, []rune("and")...)
		case r == ' ':
		case r >= 'A' && r <= 'Z':
			cleaned = append(cleaned, r+('a'-'A'))
		default:
			cleaned = append(cleaned, r)
		}
	}
	return fmt.Sprintf("contact@%s.com", string(cleaned))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
