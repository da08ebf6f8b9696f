package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/wastezero/backend-go/internal/generator"
	"github.com/andresuchdata/wastezero/backend-go/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "seed",
		Usage: "Generate a synthetic store data set as CSV files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory to write the CSV files into",
				Value:   "./data",
				EnvVars: []string{"APP_DATA_DIR"},
			},
			&cli.IntFlag{
				Name:  "products",
				Usage: "Number of products to generate",
				Value: 150,
			},
			&cli.IntFlag{
				Name:  "suppliers",
				Usage: "Number of suppliers to generate",
				Value: 20,
			},
			&cli.IntFlag{
				Name:  "employees",
				Usage: "Number of employees to schedule",
				Value: 15,
			},
			&cli.IntFlag{
				Name:  "history-days",
				Usage: "Days of sales history to generate",
				Value: 60,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Random seed (0 derives one from the current time)",
			},
		},
		Action: runSeed,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("seed failed")
	}
}

func runSeed(c *cli.Context) error {
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.New(generator.Config{
		NumProducts:  c.Int("products"),
		NumSuppliers: c.Int("suppliers"),
		NumEmployees: c.Int("employees"),
		HistoryDays:  c.Int("history-days"),
		Seed:         seed,
	})

	logger.Log.Info().Int64("seed", seed).Msg("generating data set")
	dataset := gen.Generate(time.Now())
	return generator.WriteCSVs(dataset, c.String("data-dir"))
}
