package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/wastezero/backend-go/internal/config"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/greenscore"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/schedule"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/seasonal"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/supplier"
	"github.com/andresuchdata/wastezero/backend-go/internal/engine/waste"
	"github.com/andresuchdata/wastezero/backend-go/internal/loader"
	"github.com/andresuchdata/wastezero/backend-go/internal/report"
	"github.com/andresuchdata/wastezero/backend-go/pkg/clock"
	"github.com/andresuchdata/wastezero/backend-go/pkg/logger"
)

func newDataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Usage:   "Directory containing inventory.csv, sales.csv and suppliers.csv",
		EnvVars: []string{"APP_DATA_DIR"},
	}
}

func newOutDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "out-dir",
		Usage:   "Directory for CSV exports (disabled when empty)",
		EnvVars: []string{"APP_OUT_DIR"},
	}
}

func newAsOfFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "as-of",
		Usage: "Analysis reference date (YYYY-MM-DD), defaults to now",
	}
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "analytics",
		Usage: "Retail waste, energy and supplier analytics",
		Flags: []cli.Flag{
			newDataDirFlag(),
			newOutDirFlag(),
			newAsOfFlag(),
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "waste",
				Usage:  "Score products for expiry waste risk",
				Action: wrap(runWaste),
			},
			{
				Name:   "schedule",
				Usage:  "Recommend hourly lighting/AC settings from footfall",
				Action: wrap(runSchedule),
			},
			{
				Name:   "greenscore",
				Usage:  "Compute the composite sustainability score",
				Action: wrap(runGreenScore),
			},
			{
				Name:   "suppliers",
				Usage:  "Analyze supplier reliability and expiry exposure",
				Action: wrap(runSuppliers),
			},
			{
				Name:   "seasonal",
				Usage:  "Analyze seasonal trends and forecast demand",
				Action: wrap(runSeasonal),
			},
			{
				Name:   "report",
				Usage:  "Run all analytics and render the full report",
				Action: wrap(runReport),
			},
			{
				Name:   "train",
				Usage:  "Train the waste prediction model from historical data",
				Action: wrap(runTrain),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("analytics failed")
	}
}

type action func(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error

// wrap loads config and data once, resolves the reference time and hands
// both to the command action.
func wrap(fn action) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if lvl := c.String("log-level"); lvl != "" {
			cfg.App.LogLevel = lvl
		}
		logger.SetLevel(cfg.App.LogLevel)

		dataDir := cfg.App.DataDir
		if v := c.String("data-dir"); v != "" {
			dataDir = v
		}
		data, err := loader.LoadAll(dataDir)
		if err != nil {
			return err
		}

		clk := clock.Clock(clock.Real{})
		if asOf := c.String("as-of"); asOf != "" {
			t, err := time.Parse("2006-01-02", asOf)
			if err != nil {
				return fmt.Errorf("invalid --as-of date %q: %w", asOf, err)
			}
			clk = clock.Fixed{T: t}
		}

		return fn(c, cfg, data, clk.Now())
	}
}

func outDir(c *cli.Context, cfg *config.Config) string {
	if v := c.String("out-dir"); v != "" {
		return v
	}
	return cfg.App.OutDir
}

func wasteCalculator(cfg *config.Config, data *loader.Dataset, now time.Time) *waste.Calculator {
	wcfg := waste.Config{StockThresholdFactor: cfg.Waste.StockThresholdFactor}
	if cfg.Waste.AutoThresholds {
		wcfg.Threshold = waste.AutoThresholds(data.Products, now)
	} else {
		wcfg.Threshold = waste.FixedThreshold{Days: float64(cfg.Waste.ExpiryThresholdDays)}
	}
	return waste.NewCalculator(wcfg)
}

func runWaste(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	all, atRisk := wasteCalculator(cfg, data, now).Assess(data.Products, data.Sales, now)

	r := report.NewRenderer(os.Stdout)
	r.Waste(atRisk, len(all))

	if dir := outDir(c, cfg); dir != "" {
		return report.ExportAtRisk(dir, atRisk)
	}
	return nil
}

func scheduleConfig(cfg *config.Config) schedule.Config {
	return schedule.Config{
		OpenHour:            cfg.Store.OpenHour,
		CloseHour:           cfg.Store.CloseHour,
		PeakThresholdFactor: cfg.Energy.PeakThresholdFactor,
		OffPeakReductionPct: cfg.Energy.OffPeakReductionPct,
	}
}

func runSchedule(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	footfall := schedule.InferFootfall(data.Sales)
	hours := schedule.Recommend(footfall, scheduleConfig(cfg))

	r := report.NewRenderer(os.Stdout)
	r.Schedule(hours, footfall, cfg.Energy.OffPeakReductionPct)
	return nil
}

func runGreenScore(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	_, atRisk := wasteCalculator(cfg, data, now).Assess(data.Products, data.Sales, now)

	footfall := schedule.InferFootfall(data.Sales)
	hours := schedule.Recommend(footfall, scheduleConfig(cfg))

	energyCfg := greenscore.EnergyConfig{
		BaseConsumptionKW:   cfg.Energy.BaseConsumptionKW,
		CostPerKWh:          cfg.Energy.CostPerKWh,
		OffPeakReductionPct: cfg.Energy.OffPeakReductionPct,
	}
	wasteValue, _ := greenscore.WasteValue(atRisk)
	totalValue := greenscore.TotalInventoryValue(data.Products)
	savedKWh, costSaved := greenscore.EstimateEnergySavings(hours, energyCfg)
	maxSaved := greenscore.MaxPossibleSavings(cfg.Store.OpenHour, cfg.Store.CloseHour, energyCfg)

	final, wasteScore, energyScore := greenscore.Score(wasteValue, totalValue, savedKWh, maxSaved,
		greenscore.Weights{Waste: cfg.GreenScore.WasteWeight, Energy: cfg.GreenScore.EnergyWeight})

	r := report.NewRenderer(os.Stdout)
	r.GreenScore(final, wasteScore, energyScore, wasteValue, totalValue, savedKWh, costSaved)
	return nil
}

func runSuppliers(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	metrics := supplier.Analyze(data.Suppliers, data.Products, now)
	stats := supplier.Summarize(metrics)
	recs := supplier.Recommendations(metrics)

	r := report.NewRenderer(os.Stdout)
	r.Suppliers(metrics, stats, recs)

	if dir := outDir(c, cfg); dir != "" {
		return report.ExportSupplierMetrics(dir, metrics)
	}
	return nil
}

func runSeasonal(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	trends := seasonal.AnalyzeTrends(data.Sales, data.Products)
	forecasts := seasonal.ForecastDemand(data.Products, data.Sales, now, cfg.Forecast.Months)
	efficiency := seasonal.EfficiencyScore(data.Products, data.Sales, now)
	recs := seasonal.Recommendations(data.Products, data.Sales, now)

	r := report.NewRenderer(os.Stdout)
	r.Seasonal(trends, forecasts, efficiency, recs)

	if dir := outDir(c, cfg); dir != "" {
		return report.ExportForecast(dir, forecasts)
	}
	return nil
}

func runReport(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	report.NewRenderer(os.Stdout).Timestamp(now)

	for _, fn := range []action{runWaste, runSchedule, runGreenScore, runSuppliers, runSeasonal} {
		if err := fn(c, cfg, data, now); err != nil {
			return err
		}
	}
	return nil
}

// runTrain is a placeholder. The risk scoring is heuristic; a learned model
// would need labeled waste outcomes which the data set does not carry.
func runTrain(c *cli.Context, cfg *config.Config, data *loader.Dataset, now time.Time) error {
	logger.Log.Info().
		Int("products", len(data.Products)).
		Int("sales", len(data.Sales)).
		Msg("no trainable labels in data set, risk scoring stays heuristic")
	fmt.Println("Model training skipped: no labeled waste outcomes available.")
	return nil
}
