package calculator

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/domain"
)

// RecordsFromModels converts stored rows into the plain record collections
// the cashflow engine consumes.
func RecordsFromModels(
	companyID int32,
	spends []model.Spend,
	trades []model.Trade,
	payments []model.Payment,
	thresholds []model.Threshold,
	churn *float64,
) CompanyRecords {
	records := CompanyRecords{
		CompanyID:  companyID,
		Spends:     make([]domain.SpendRecord, 0, len(spends)),
		Trades:     make([]domain.TradeRecord, 0, len(trades)),
		Payments:   make([]domain.PaymentRecord, 0, len(payments)),
		Thresholds: make([]domain.ThresholdRecord, 0, len(thresholds)),
		Churn:      churn,
	}

	for _, s := range spends {
		records.Spends = append(records.Spends, domain.SpendRecord{
			CohortMonth: s.CohortMonth,
			Amount:      s.Amount,
		})
	}
	for _, t := range trades {
		records.Trades = append(records.Trades, domain.TradeRecord{
			TradeID:           t.ID,
			CohortMonth:       t.CohortMonth,
			SharingPercentage: t.SharingPercentage,
			CashCap:           t.CashCap,
		})
	}
	for _, p := range payments {
		records.Payments = append(records.Payments, domain.PaymentRecord{
			CustomerID:  p.CustomerID,
			PaymentDate: p.PaymentDate,
			CohortMonth: p.CohortMonth,
			Amount:      p.Amount,
		})
	}
	for _, t := range thresholds {
		records.Thresholds = append(records.Thresholds, domain.ThresholdRecord{
			PaymentPeriodMonth:    int(t.PaymentPeriodMonth),
			MinimumPaymentPercent: t.MinimumPaymentPercent,
		})
	}

	return records
}
