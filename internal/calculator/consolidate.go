package calculator

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"errors"
	"fmt"
	"time"
)

// ErrMissingCohortSpend indicates a trade or payment referenced a cohort
// month that has no spend row. Every cohort month reaching this package must
// have a corresponding spend; the ingestion layer owns that guarantee.
var ErrMissingCohortSpend = errors.New("cohort month has no matching spend")

type cohortRecords struct {
	spend    domain.SpendRecord
	trade    *domain.TradeRecord
	payments []domain.PaymentRecord
}

// consolidateCohorts groups one company's flat records by cohort month.
// A cohort month present in spends but absent from trades and payments is
// valid and yields an unfunded cohort with no payments.
func consolidateCohorts(
	companyID int32,
	spends []domain.SpendRecord,
	trades []domain.TradeRecord,
	payments []domain.PaymentRecord,
) (map[time.Time]*cohortRecords, error) {
	cohorts := map[time.Time]*cohortRecords{}
	for _, s := range spends {
		month := util.MonthFloor(s.CohortMonth)
		s.CohortMonth = month
		cohorts[month] = &cohortRecords{spend: s}
	}

	for _, t := range trades {
		month := util.MonthFloor(t.CohortMonth)
		cohort, ok := cohorts[month]
		if !ok {
			return nil, fmt.Errorf("company %d trade %d cohort %s: %w", companyID, t.TradeID, month.Format("2006-01"), ErrMissingCohortSpend)
		}
		trade := t
		trade.CohortMonth = month
		cohort.trade = &trade
	}

	for _, p := range payments {
		month := util.MonthFloor(p.CohortMonth)
		cohort, ok := cohorts[month]
		if !ok {
			return nil, fmt.Errorf("company %d payment for customer %s cohort %s: %w", companyID, p.CustomerID, month.Format("2006-01"), ErrMissingCohortSpend)
		}
		cohort.payments = append(cohort.payments, p)
	}

	return cohorts, nil
}
