package cmd

import (
	"cvf/api"
	"cvf/internal"
	"cvf/internal/repository"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	apiHandler := &api.ApiHandler{
		Db:                  dbConn,
		CompanyRepository:   repository.NewCompanyRepository(dbConn),
		SpendRepository:     repository.NewSpendRepository(dbConn),
		TradeRepository:     repository.NewTradeRepository(dbConn),
		PaymentRepository:   repository.NewPaymentRepository(dbConn),
		ThresholdRepository: repository.NewThresholdRepository(dbConn),
	}

	return apiHandler, nil
}
