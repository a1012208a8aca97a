package main

import (
	"cvf/cmd"
	"cvf/internal"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cvf",
		Short: "cohort value funding cashflow engine",
	}

	var port int
	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "run the http api",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)
			return apiHandler.StartApi(port)
		},
	}
	apiCmd.Flags().IntVar(&port, "port", 8000, "port to listen on")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "insert sample companies, trades and payments",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			tx, err := apiHandler.Db.Begin()
			if err != nil {
				return err
			}
			defer tx.Rollback()

			err = internal.SeedDatabase(
				tx,
				apiHandler.CompanyRepository,
				apiHandler.SpendRepository,
				apiHandler.TradeRepository,
				apiHandler.PaymentRepository,
				apiHandler.ThresholdRepository,
			)
			if err != nil {
				return err
			}
			return tx.Commit()
		},
	}

	var companyID int32
	ingestCmd := &cobra.Command{
		Use:   "ingest-payments [file]",
		Short: "bulk load a payments csv for a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			tx, err := apiHandler.Db.Begin()
			if err != nil {
				return err
			}
			defer tx.Rollback()

			inserted, err := internal.IngestPayments(tx, companyID, f, apiHandler.PaymentRepository)
			if err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return err
			}

			fmt.Printf("inserted %d payments\n", inserted)
			return nil
		},
	}
	ingestCmd.Flags().Int32Var(&companyID, "company-id", 0, "company the payments belong to")
	_ = ingestCmd.MarkFlagRequired("company-id")

	rootCmd.AddCommand(apiCmd, seedCmd, ingestCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
