package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitorbocca/nola-godlevel-backend/internal/config"
	"github.com/vitorbocca/nola-godlevel-backend/internal/database"
	"github.com/vitorbocca/nola-godlevel-backend/internal/seeder"
)

func main() {
	if err := newSeedCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the challenge database with synthetic restaurant data",
		Long:         `Generates brands, stores, a product catalog, customers and months of statistically plausible sales against a pre-existing schema. Re-running duplicates rows; it does not reconcile.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.DatabaseURL, "db-url", cfg.DatabaseURL, "PostgreSQL connection URL")
	cmd.Flags().IntVar(&cfg.NumStores, "stores", cfg.NumStores, "Number of stores")
	cmd.Flags().IntVar(&cfg.NumProducts, "products", cfg.NumProducts, "Number of products")
	cmd.Flags().IntVar(&cfg.NumItems, "items", cfg.NumItems, "Number of items/complements")
	cmd.Flags().IntVar(&cfg.NumCustomers, "customers", cfg.NumCustomers, "Number of customers")
	cmd.Flags().IntVar(&cfg.Months, "months", cfg.Months, "Months of sales history")

	return cmd
}

func run(cfg *config.Config) error {
	fmt.Println("======================================================================")
	fmt.Println("God Level Coder Challenge - Data Generator")
	fmt.Println("======================================================================")
	fmt.Printf("Generating %d months of restaurant operational data...\n\n", cfg.Months)

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: closing database: %v", err)
		}
	}()

	return seeder.New(db, cfg).Run()
}
