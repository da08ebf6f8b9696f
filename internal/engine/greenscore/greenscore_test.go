package greenscore

import (
	"testing"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

var testEnergyCfg = EnergyConfig{
	BaseConsumptionKW:   10,
	CostPerKWh:          0.15,
	OffPeakReductionPct: 50,
}

func TestWasteValue(t *testing.T) {
	atRisk := []domain.Product{
		{CostPrice: 2.5, QuantityInStock: 10},
		{CostPrice: 4.0, QuantityInStock: 5},
	}
	value, items := WasteValue(atRisk)
	if value != 45 {
		t.Errorf("expected value 45, got %v", value)
	}
	if items != 15 {
		t.Errorf("expected 15 items, got %d", items)
	}
}

func TestScoreNoWaste(t *testing.T) {
	final, wasteScore, energyScore := Score(0, 10000, 0, 0, DefaultWeights)

	if wasteScore != 100 {
		t.Errorf("expected waste score 100, got %v", wasteScore)
	}
	if energyScore != 50 {
		t.Errorf("zero possible savings should yield neutral 50, got %v", energyScore)
	}
	// 100*0.6 + 50*0.4
	if final != 80 {
		t.Errorf("expected final 80.0, got %v", final)
	}
}

func TestScoreWastePenalty(t *testing.T) {
	// 10% of inventory at risk: 100 - 10*5 = 50
	_, wasteScore, _ := Score(1000, 10000, 0, 1, DefaultWeights)
	if wasteScore != 50 {
		t.Errorf("expected waste score 50, got %v", wasteScore)
	}

	// 25% at risk floors the sub-score at 0.
	_, wasteScore, _ = Score(2500, 10000, 0, 1, DefaultWeights)
	if wasteScore != 0 {
		t.Errorf("expected waste score 0, got %v", wasteScore)
	}
}

func TestScoreNeutralOnEmptyInventory(t *testing.T) {
	final, wasteScore, energyScore := Score(0, 0, 0, 0, DefaultWeights)
	if wasteScore != 50 || energyScore != 50 {
		t.Errorf("expected neutral sub-scores, got waste=%v energy=%v", wasteScore, energyScore)
	}
	if final != 50 {
		t.Errorf("expected final 50, got %v", final)
	}
}

func TestScoreEnergyClamped(t *testing.T) {
	_, _, energyScore := Score(0, 1, 200, 100, DefaultWeights)
	if energyScore != 100 {
		t.Errorf("energy score should clamp at 100, got %v", energyScore)
	}

	_, _, energyScore = Score(0, 1, -10, 100, DefaultWeights)
	if energyScore != 0 {
		t.Errorf("negative savings should clamp at 0, got %v", energyScore)
	}
}

func TestEstimateEnergySavings(t *testing.T) {
	hours := []domain.ScheduleHour{
		{Hour: 0, Setting: domain.PowerMinimalOff},
		{Hour: 1, Setting: domain.PowerReduced},
		{Hour: 2, Setting: domain.PowerFull},
		{Hour: 3, Setting: domain.PowerStandard},
	}
	savedKWh, costSaved := EstimateEnergySavings(hours, testEnergyCfg)

	// Optimized: 1 + 5 + 10 + 10 = 26, against 240 at full power all day.
	if savedKWh != 214 {
		t.Errorf("expected 214 kWh saved, got %v", savedKWh)
	}
	if costSaved != 214*0.15 {
		t.Errorf("expected cost %v, got %v", 214*0.15, costSaved)
	}
}

func TestEstimateEnergySavingsZeroReduction(t *testing.T) {
	cfg := EnergyConfig{BaseConsumptionKW: 10, CostPerKWh: 0.15, OffPeakReductionPct: 0}
	hours := []domain.ScheduleHour{
		{Hour: 0, Setting: domain.PowerReduced},
		{Hour: 1, Setting: domain.PowerReduced},
	}

	savedKWh, _ := EstimateEnergySavings(hours, cfg)
	// Reduced hours at 0% reduction burn the full rate: 20 optimized
	// against 240 around the clock.
	if savedKWh != 220 {
		t.Errorf("expected 220 kWh saved, got %v", savedKWh)
	}
}

func TestEstimateEnergySavingsEmptySchedule(t *testing.T) {
	savedKWh, costSaved := EstimateEnergySavings(nil, testEnergyCfg)
	if savedKWh != 0 || costSaved != 0 {
		t.Errorf("expected zero savings for empty schedule, got %v kWh $%v", savedKWh, costSaved)
	}
}

func TestMaxPossibleSavings(t *testing.T) {
	// 14 operating hours at 10 kW halved: 70 kWh headroom.
	if got := MaxPossibleSavings(8, 22, testEnergyCfg); got != 70 {
		t.Errorf("expected 70, got %v", got)
	}
	// Never open yields nothing to save.
	if got := MaxPossibleSavings(0, 0, testEnergyCfg); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}
