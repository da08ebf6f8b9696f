package schedule

import (
	"testing"
	"time"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

func saleAtHour(hour, qty int) domain.Sale {
	return domain.Sale{
		ProductID:    "P1",
		Timestamp:    time.Date(2025, 6, 15, hour, 30, 0, 0, time.UTC),
		QuantitySold: qty,
	}
}

func TestInferFootfallCountsTransactionsNotQuantities(t *testing.T) {
	sales := []domain.Sale{
		saleAtHour(9, 5),
		saleAtHour(9, 1),
		saleAtHour(14, 100),
	}
	footfall := InferFootfall(sales)

	if footfall[9] != 2 {
		t.Errorf("expected 2 visits at 09:00, got %d", footfall[9])
	}
	if footfall[14] != 1 {
		t.Errorf("expected 1 visit at 14:00, got %d", footfall[14])
	}
	if footfall.Total() != len(sales) {
		t.Errorf("total %d must equal sale record count %d", footfall.Total(), len(sales))
	}
}

func TestRecommendCovers24Hours(t *testing.T) {
	var footfall Footfall
	footfall[10] = 10

	hours := Recommend(footfall, Config{OpenHour: 8, CloseHour: 22})
	if len(hours) != 24 {
		t.Fatalf("expected 24 schedule entries, got %d", len(hours))
	}
	for i, h := range hours {
		if h.Hour != i {
			t.Errorf("entry %d carries hour %d", i, h.Hour)
		}
	}
}

func TestRecommendPeakAndQuietHours(t *testing.T) {
	var footfall Footfall
	footfall[12] = 100 // peak
	footfall[13] = 80  // above 70% of peak
	footfall[9] = 30   // below threshold

	hours := Recommend(footfall, Config{OpenHour: 8, CloseHour: 22})

	if hours[12].Setting != domain.PowerFull {
		t.Errorf("peak hour should be full power, got %v", hours[12].Setting)
	}
	if hours[13].Setting != domain.PowerFull {
		t.Errorf("hour at 80%% of peak should be full power, got %v", hours[13].Setting)
	}
	if hours[9].Setting != domain.PowerReduced {
		t.Errorf("quiet open hour should be reduced, got %v", hours[9].Setting)
	}
	if hours[9].Reason != "Low footfall (30 visits)" {
		t.Errorf("unexpected reason %q", hours[9].Reason)
	}
	if hours[3].Setting != domain.PowerMinimalOff {
		t.Errorf("closed hour should be minimal, got %v", hours[3].Setting)
	}
	if hours[22].Setting != domain.PowerMinimalOff {
		t.Errorf("closing hour itself is outside operating hours, got %v", hours[22].Setting)
	}
}

func TestRecommendNoHistoryFallsBackToStandard(t *testing.T) {
	hours := Recommend(Footfall{}, Config{OpenHour: 8, CloseHour: 22})

	if len(hours) != 24 {
		t.Fatalf("expected 24 entries, got %d", len(hours))
	}
	for _, h := range hours {
		if h.Hour >= 8 && h.Hour < 22 {
			if h.Setting != domain.PowerStandard {
				t.Errorf("hour %d: expected standard operation, got %v", h.Hour, h.Setting)
			}
		} else if h.Setting != domain.PowerMinimalOff {
			t.Errorf("hour %d: expected minimal, got %v", h.Hour, h.Setting)
		}
	}
}

func TestRecommendFootfallOutsideOpenHoursIgnoredForPeak(t *testing.T) {
	var footfall Footfall
	footfall[2] = 1000 // inventory restock scans at night, not customers
	footfall[10] = 10

	hours := Recommend(footfall, Config{OpenHour: 8, CloseHour: 22})

	// Peak is taken over open hours only, so hour 10 is the peak itself.
	if hours[10].Setting != domain.PowerFull {
		t.Errorf("open-hour peak should be full power, got %v", hours[10].Setting)
	}
	if hours[2].Setting != domain.PowerMinimalOff {
		t.Errorf("night hour stays minimal, got %v", hours[2].Setting)
	}
}

func TestWithDefaultsKeepsExplicitZeroReduction(t *testing.T) {
	cfg := Config{OpenHour: 8, CloseHour: 22, OffPeakReductionPct: 0}.withDefaults()

	if cfg.OffPeakReductionPct != 0 {
		t.Errorf("explicit 0%% reduction must survive, got %d", cfg.OffPeakReductionPct)
	}
	if cfg.PeakThresholdFactor != 0.7 {
		t.Errorf("unset peak factor should default to 0.7, got %v", cfg.PeakThresholdFactor)
	}

	cfg = Config{OpenHour: 8, CloseHour: 22, OffPeakReductionPct: -5}.withDefaults()
	if cfg.OffPeakReductionPct != 0 {
		t.Errorf("negative reduction should clamp to 0, got %d", cfg.OffPeakReductionPct)
	}
}

func TestPowerSettingLabels(t *testing.T) {
	if got := domain.PowerReduced.Label(50); got != "Reduced Power (50% savings mode)" {
		t.Errorf("unexpected label %q", got)
	}
	if got := domain.PowerFull.Label(50); got != "Full Power" {
		t.Errorf("unexpected label %q", got)
	}
	if got := domain.PowerMinimalOff.Label(50); got != "Minimal/Off" {
		t.Errorf("unexpected label %q", got)
	}
	if got := domain.PowerStandard.Label(50); got != "Standard Operation" {
		t.Errorf("unexpected label %q", got)
	}
}
