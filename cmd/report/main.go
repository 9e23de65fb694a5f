package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/andresuchdata/smart-reorder/internal/reorder"
	"github.com/andresuchdata/smart-reorder/internal/report"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "report",
		Usage: "Run the reorder calculator over the sample dataset and print recommendations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "simulate-spike",
				Usage: "Simulate demand spike for specific `PRODUCT_ID`",
			},
			&cli.Float64Flag{
				Name:  "spike-multiplier",
				Usage: "Demand spike multiplier",
				Value: reorder.DefaultSpikeMultiplier,
			},
			&cli.IntFlag{
				Name:  "spike-days",
				Usage: "Duration of spike in days",
				Value: reorder.DefaultSpikeDays,
			},
			&cli.BoolFlag{
				Name:  "export-csv",
				Usage: "Export recommendations to CSV",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "CSV output `FILE`",
				Value: "reorder_report.csv",
			},
		},
		Action: runReport,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runReport(c *cli.Context) error {
	calculator := reorder.NewCalculator()
	simulator := reorder.NewSimulator(calculator)
	generator := report.NewGenerator(os.Stdout)

	products := domain.SampleProducts()

	if target := c.String("simulate-spike"); target != "" {
		multiplier := c.Float64("spike-multiplier")
		days := c.Int("spike-days")
		products, _ = simulator.SimulateSpike(products, target, multiplier, days)
		fmt.Printf("\nRunning simulation with %.1fx demand spike for %s\n", multiplier, target)
	}

	recommendations := calculator.GenerateRecommendations(products)

	generator.PrintSummary(products, recommendations)
	generator.PrintRecommendations(recommendations)

	if c.Bool("export-csv") {
		if err := generator.ExportCSV(c.String("output"), recommendations); err != nil {
			return fmt.Errorf("csv export failed: %w", err)
		}
	}

	return nil
}
