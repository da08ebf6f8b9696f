// Package greenscore blends predicted waste value and estimated energy
// savings into a single 0-100 sustainability score.
package greenscore

import (
	"math"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// EnergyConfig carries the store's energy cost model. It is threaded in
// explicitly so tests can vary it freely.
type EnergyConfig struct {
	BaseConsumptionKW   float64
	CostPerKWh          float64
	OffPeakReductionPct int
}

// Weights control the waste/energy blend of the final score.
type Weights struct {
	Waste  float64
	Energy float64
}

// DefaultWeights favours waste reduction over energy savings.
var DefaultWeights = Weights{Waste: 0.6, Energy: 0.4}

// WasteValue totals the at-cost value of at-risk stock and the unit count
// at risk.
func WasteValue(atRisk []domain.Product) (value float64, items int) {
	for _, p := range atRisk {
		value += p.InventoryValue()
		items += p.QuantityInStock
	}
	return value, items
}

// TotalInventoryValue totals the at-cost value of the full inventory.
func TotalInventoryValue(products []domain.Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.InventoryValue()
	}
	return total
}

// EstimateEnergySavings compares the recommended schedule against running
// at full power around the clock. Full and standard hours cost the base
// rate, reduced hours are discounted by the configured percentage, and
// minimal hours run at 10% for essential systems.
func EstimateEnergySavings(hours []domain.ScheduleHour, cfg EnergyConfig) (savedKWh, costSaved float64) {
	if len(hours) == 0 {
		return 0, 0
	}

	optimized := 0.0
	for _, h := range hours {
		optimized += cfg.BaseConsumptionKW * hourlyFactor(h.Setting, cfg.OffPeakReductionPct)
	}

	savedKWh = cfg.BaseConsumptionKW*24 - optimized
	return savedKWh, savedKWh * cfg.CostPerKWh
}

func hourlyFactor(s domain.PowerSetting, reductionPct int) float64 {
	switch s {
	case domain.PowerReduced:
		return 1 - float64(reductionPct)/100
	case domain.PowerMinimalOff:
		return 0.1
	default:
		return 1.0
	}
}

// MaxPossibleSavings is the normalization ceiling for the energy score:
// the gap between full power during all open hours and reduced power during
// all open hours, with minimal consumption outside opening times either way.
func MaxPossibleSavings(openHour, closeHour int, cfg EnergyConfig) float64 {
	operating := float64(closeHour - openHour)
	nonOperating := (24 - operating) * cfg.BaseConsumptionKW * 0.1

	standard := operating*cfg.BaseConsumptionKW + nonOperating
	ideal := operating*cfg.BaseConsumptionKW*(1-float64(cfg.OffPeakReductionPct)/100) + nonOperating

	return math.Max(0, standard-ideal)
}

// Score computes the composite GreenScore along with its waste and energy
// sub-scores, each in [0,100] and rounded to two decimals. Zero inventory
// value or zero possible savings yields a neutral 50 for the affected
// sub-score instead of dividing by zero.
func Score(wasteValue, totalInventoryValue, energySaved, maxPossibleSaved float64, w Weights) (final, wasteScore, energyScore float64) {
	if totalInventoryValue == 0 {
		wasteScore = 50
	} else {
		wastePct := wasteValue / totalInventoryValue * 100
		wasteScore = math.Max(0, 100-wastePct*5)
	}

	if maxPossibleSaved == 0 {
		energyScore = 50
	} else {
		energyScore = math.Max(0, math.Min(100, energySaved/maxPossibleSaved*100))
	}

	final = wasteScore*w.Waste + energyScore*w.Energy

	return round2(final), round2(wasteScore), round2(energyScore)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
