package domain

import (
	"fmt"
	"time"
)

// PowerSetting is the recommended lighting/AC level for one hour of the day.
type PowerSetting int

const (
	// PowerMinimalOff keeps only essential systems running.
	PowerMinimalOff PowerSetting = iota
	// PowerReduced runs at a configured percentage below full power.
	PowerReduced
	// PowerFull runs lighting and AC at full capacity.
	PowerFull
	// PowerStandard is the fallback for open hours when there is no sales
	// history to derive a footfall pattern from.
	PowerStandard
)

// Label renders the setting the way the schedule report displays it.
// reductionPct only matters for PowerReduced.
func (s PowerSetting) Label(reductionPct int) string {
	switch s {
	case PowerFull:
		return "Full Power"
	case PowerReduced:
		return fmt.Sprintf("Reduced Power (%d%% savings mode)", reductionPct)
	case PowerStandard:
		return "Standard Operation"
	default:
		return "Minimal/Off"
	}
}

// ScheduleHour is one hour of the recommended energy schedule. Produced
// fresh on every run, never persisted.
type ScheduleHour struct {
	Hour    int          `json:"hour"`
	Setting PowerSetting `json:"setting"`
	Reason  string       `json:"reason"`
}

// Season is a calendar season used by the seasonal analytics engine.
type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
)

// SeasonForMonth maps a calendar month to its season: Dec-Feb Winter,
// Mar-May Spring, Jun-Aug Summer, Sep-Nov Fall.
func SeasonForMonth(m time.Month) Season {
	switch m {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonFall
	}
}
