package internal

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/repository"
	"cvf/internal/util"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type seedCompany struct {
	name       string
	spends     []model.Spend
	trades     []model.Trade
	payments   []model.Payment
	thresholds []model.Threshold
}

// SeedDatabase inserts a small deterministic sample portfolio for local
// runs: three companies with funded and unfunded cohorts, a couple of
// customers each, and sparse threshold rules.
func SeedDatabase(
	tx *sql.Tx,
	companyRepository repository.CompanyRepository,
	spendRepository repository.SpendRepository,
	tradeRepository repository.TradeRepository,
	paymentRepository repository.PaymentRepository,
	thresholdRepository repository.ThresholdRepository,
) error {
	log := zap.S()

	for _, company := range sampleCompanies() {
		created, err := companyRepository.Add(tx, model.Company{Name: company.name})
		if err != nil {
			return fmt.Errorf("failed to seed company %s: %w", company.name, err)
		}
		log.Infow("seeded company", "name", company.name, "id", created.ID)

		for _, s := range company.spends {
			s.CompanyID = created.ID
			if _, err := spendRepository.Add(tx, s); err != nil {
				return fmt.Errorf("failed to seed spend for %s: %w", company.name, err)
			}
		}
		for _, t := range company.trades {
			t.CompanyID = created.ID
			if _, err := tradeRepository.Add(tx, t); err != nil {
				return fmt.Errorf("failed to seed trade for %s: %w", company.name, err)
			}
		}
		for i := range company.payments {
			company.payments[i].CompanyID = created.ID
		}
		if _, err := paymentRepository.BulkAdd(tx, company.payments); err != nil {
			return fmt.Errorf("failed to seed payments for %s: %w", company.name, err)
		}
		for _, t := range company.thresholds {
			t.CompanyID = created.ID
			if _, err := thresholdRepository.Add(tx, t); err != nil {
				return fmt.Errorf("failed to seed threshold for %s: %w", company.name, err)
			}
		}
	}

	return nil
}

func sampleCompanies() []seedCompany {
	jan := util.NewDate(2024, 1, 1)
	feb := util.NewDate(2024, 2, 1)
	mar := util.NewDate(2024, 3, 1)

	return []seedCompany{
		{
			name: "Acme Corp",
			spends: []model.Spend{
				{CohortMonth: jan, Amount: 100000},
				{CohortMonth: feb, Amount: 120000},
				{CohortMonth: mar, Amount: 90000},
			},
			trades: []model.Trade{
				{CohortMonth: jan, SharingPercentage: 0.35, CashCap: 150000},
				{CohortMonth: feb, SharingPercentage: 0.40, CashCap: 180000},
			},
			payments: []model.Payment{
				{CustomerID: "cust_001", PaymentDate: util.NewDate(2024, 1, 15), CohortMonth: jan, Amount: 5000},
				{CustomerID: "cust_001", PaymentDate: util.NewDate(2024, 2, 15), CohortMonth: jan, Amount: 4500},
				{CustomerID: "cust_002", PaymentDate: util.NewDate(2024, 1, 20), CohortMonth: jan, Amount: 8000},
				{CustomerID: "cust_003", PaymentDate: util.NewDate(2024, 2, 10), CohortMonth: feb, Amount: 12000},
			},
			thresholds: []model.Threshold{
				{PaymentPeriodMonth: 0, MinimumPaymentPercent: 0.15},
				{PaymentPeriodMonth: 1, MinimumPaymentPercent: 0.10},
			},
		},
		{
			name: "TechStart Inc",
			spends: []model.Spend{
				{CohortMonth: jan, Amount: 50000},
				{CohortMonth: feb, Amount: 60000},
			},
			trades: []model.Trade{
				{CohortMonth: jan, SharingPercentage: 0.45, CashCap: 75000},
			},
			payments: []model.Payment{
				{CustomerID: "tech_001", PaymentDate: util.NewDate(2024, 1, 10), CohortMonth: jan, Amount: 3000},
			},
			thresholds: []model.Threshold{
				{PaymentPeriodMonth: 0, MinimumPaymentPercent: 0.20},
			},
		},
		{
			name: "GrowthCo",
			spends: []model.Spend{
				{CohortMonth: feb, Amount: 200000},
			},
			trades: []model.Trade{
				{CohortMonth: feb, SharingPercentage: 0.30, CashCap: 300000},
			},
			payments: []model.Payment{
				{CustomerID: "growth_001", PaymentDate: util.NewDate(2024, 2, 12), CohortMonth: feb, Amount: 25000},
			},
			thresholds: []model.Threshold{
				{PaymentPeriodMonth: 1, MinimumPaymentPercent: 0.12},
			},
		},
	}
}
