// Package schedule infers hourly customer traffic from sales history and
// turns it into an energy schedule recommendation.
package schedule

import (
	"fmt"

	"github.com/andresuchdata/wastezero/backend-go/internal/domain"
)

// Footfall is the estimated customer visit count per hour of day. One sale
// transaction is treated as one visit.
type Footfall [24]int

// Total returns the number of visits across all hours, which equals the
// number of sale records the vector was built from.
func (f Footfall) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// InferFootfall counts sale transactions per hour of day across the entire
// sales history. Hours with no sales stay 0.
func InferFootfall(sales []domain.Sale) Footfall {
	var footfall Footfall
	for _, s := range sales {
		footfall[s.Timestamp.Hour()]++
	}
	return footfall
}

// Config carries the schedule recommendation parameters.
type Config struct {
	OpenHour  int
	CloseHour int
	// PeakThresholdFactor scales the peak footfall into the full-power
	// cutoff. Defaults to 0.7.
	PeakThresholdFactor float64
	// OffPeakReductionPct is the assumed energy reduction during low
	// footfall hours. Zero means no reduction; the configuration layer
	// supplies the 50 default.
	OffPeakReductionPct int
}

func (c Config) withDefaults() Config {
	if c.PeakThresholdFactor <= 0 {
		c.PeakThresholdFactor = 0.7
	}
	if c.OffPeakReductionPct < 0 {
		c.OffPeakReductionPct = 0
	}
	return c
}

func (c Config) open(hour int) bool {
	return hour >= c.OpenHour && hour < c.CloseHour
}

// Recommend produces a 24-hour power-setting schedule: full power during
// high-footfall open hours, reduced power during quiet open hours, minimal
// outside opening times. With no sales history at all there is no footfall
// pattern to threshold against, so open hours fall back to standard
// operation.
func Recommend(footfall Footfall, cfg Config) []domain.ScheduleHour {
	cfg = cfg.withDefaults()

	if footfall.Total() == 0 {
		return defaultSchedule(cfg)
	}

	peak := 0
	for hour := cfg.OpenHour; hour < cfg.CloseHour && hour < 24; hour++ {
		if footfall[hour] > peak {
			peak = footfall[hour]
		}
	}
	peakThreshold := float64(peak) * cfg.PeakThresholdFactor

	hours := make([]domain.ScheduleHour, 0, 24)
	for hour := 0; hour < 24; hour++ {
		switch {
		case !cfg.open(hour):
			hours = append(hours, domain.ScheduleHour{
				Hour:    hour,
				Setting: domain.PowerMinimalOff,
				Reason:  "Outside operating hours",
			})
		case float64(footfall[hour]) >= peakThreshold:
			hours = append(hours, domain.ScheduleHour{
				Hour:    hour,
				Setting: domain.PowerFull,
				Reason:  fmt.Sprintf("High footfall (%d visits)", footfall[hour]),
			})
		default:
			hours = append(hours, domain.ScheduleHour{
				Hour:    hour,
				Setting: domain.PowerReduced,
				Reason:  fmt.Sprintf("Low footfall (%d visits)", footfall[hour]),
			})
		}
	}

	return hours
}

func defaultSchedule(cfg Config) []domain.ScheduleHour {
	hours := make([]domain.ScheduleHour, 0, 24)
	for hour := 0; hour < 24; hour++ {
		if cfg.open(hour) {
			hours = append(hours, domain.ScheduleHour{
				Hour:    hour,
				Setting: domain.PowerStandard,
				Reason:  "Default operating hours",
			})
		} else {
			hours = append(hours, domain.ScheduleHour{
				Hour:    hour,
				Setting: domain.PowerMinimalOff,
				Reason:  "Outside operating hours",
			})
		}
	}
	return hours
}
