// backend-go/internal/config/config.go
package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Store      StoreConfig
	Waste      WasteConfig
	Energy     EnergyConfig
	GreenScore GreenScoreConfig
	Forecast   ForecastConfig
}

type AppConfig struct {
	DataDir  string `validate:"required"`
	OutDir   string
	LogLevel string
}

type StoreConfig struct {
	OpenHour  int `validate:"gte=0,lte=23"`
	CloseHour int `validate:"gte=0,lte=24,gtfield=OpenHour"`
}

type WasteConfig struct {
	// ExpiryThresholdDays is the global threshold applied when automatic
	// per-type thresholds are disabled.
	ExpiryThresholdDays  int     `validate:"gt=0"`
	StockThresholdFactor float64 `validate:"gt=0"`
	AutoThresholds       bool
}

type EnergyConfig struct {
	BaseConsumptionKW   float64 `validate:"gt=0"`
	CostPerKWh          float64 `validate:"gte=0"`
	OffPeakReductionPct int     `validate:"gte=0,lte=100"`
	PeakThresholdFactor float64 `validate:"gt=0,lte=1"`
}

type GreenScoreConfig struct {
	WasteWeight  float64 `validate:"gte=0,lte=1"`
	EnergyWeight float64 `validate:"gte=0,lte=1"`
}

type ForecastConfig struct {
	Months int `validate:"gt=0,lte=12"`
}

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

// Load reads configuration from the environment (and .env when present),
// applying defaults that match the reference store setup. The result is
// validated once and cached.
func Load() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		viper.SetDefault("APP_DATA_DIR", "./data")
		viper.SetDefault("APP_OUT_DIR", "")
		viper.SetDefault("LOG_LEVEL", "info")

		viper.SetDefault("STORE_OPEN_HOUR", 8)
		viper.SetDefault("STORE_CLOSE_HOUR", 22)

		viper.SetDefault("WASTE_EXPIRY_THRESHOLD_DAYS", 30)
		viper.SetDefault("WASTE_STOCK_THRESHOLD_FACTOR", 1.5)
		viper.SetDefault("WASTE_AUTO_THRESHOLDS", true)

		viper.SetDefault("ENERGY_BASE_CONSUMPTION_KW", 10.0)
		viper.SetDefault("ENERGY_COST_PER_KWH", 0.15)
		viper.SetDefault("ENERGY_OFF_PEAK_REDUCTION_PCT", 50)
		viper.SetDefault("ENERGY_PEAK_THRESHOLD_FACTOR", 0.7)

		viper.SetDefault("GREENSCORE_WASTE_WEIGHT", 0.6)
		viper.SetDefault("GREENSCORE_ENERGY_WEIGHT", 0.4)

		viper.SetDefault("FORECAST_MONTHS", 3)

		viper.AutomaticEnv()

		cfg := &Config{
			App: AppConfig{
				DataDir:  viper.GetString("APP_DATA_DIR"),
				OutDir:   viper.GetString("APP_OUT_DIR"),
				LogLevel: viper.GetString("LOG_LEVEL"),
			},
			Store: StoreConfig{
				OpenHour:  viper.GetInt("STORE_OPEN_HOUR"),
				CloseHour: viper.GetInt("STORE_CLOSE_HOUR"),
			},
			Waste: WasteConfig{
				ExpiryThresholdDays:  viper.GetInt("WASTE_EXPIRY_THRESHOLD_DAYS"),
				StockThresholdFactor: viper.GetFloat64("WASTE_STOCK_THRESHOLD_FACTOR"),
				AutoThresholds:       viper.GetBool("WASTE_AUTO_THRESHOLDS"),
			},
			Energy: EnergyConfig{
				BaseConsumptionKW:   viper.GetFloat64("ENERGY_BASE_CONSUMPTION_KW"),
				CostPerKWh:          viper.GetFloat64("ENERGY_COST_PER_KWH"),
				OffPeakReductionPct: viper.GetInt("ENERGY_OFF_PEAK_REDUCTION_PCT"),
				PeakThresholdFactor: viper.GetFloat64("ENERGY_PEAK_THRESHOLD_FACTOR"),
			},
			GreenScore: GreenScoreConfig{
				WasteWeight:  viper.GetFloat64("GREENSCORE_WASTE_WEIGHT"),
				EnergyWeight: viper.GetFloat64("GREENSCORE_ENERGY_WEIGHT"),
			},
			Forecast: ForecastConfig{
				Months: viper.GetInt("FORECAST_MONTHS"),
			},
		}

		if err := Validate(cfg); err != nil {
			loadErr = err
			return
		}

		instance = cfg
	})

	return instance, loadErr
}

// Validate checks value ranges on a config, including ones built by hand in
// tests.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
