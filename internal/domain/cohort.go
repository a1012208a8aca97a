package domain

import "time"

// The four record collections the cashflow engine consumes. The storage
// layer supplies them scoped to a single company, with cohort months
// normalized to the first of the month.

type SpendRecord struct {
	CohortMonth time.Time
	Amount      float64
}

type TradeRecord struct {
	TradeID           int32
	CohortMonth       time.Time
	SharingPercentage float64
	CashCap           float64
}

type PaymentRecord struct {
	CustomerID  string
	PaymentDate time.Time
	CohortMonth time.Time
	Amount      float64
}

type ThresholdRecord struct {
	PaymentPeriodMonth    int
	MinimumPaymentPercent float64
}

// Period is one elapsed month-bucket of a cohort's payment history. The
// index is the ordinal position among calendar months that actually saw
// payments, not the calendar offset from the cohort month.
type Period struct {
	Index             int
	Month             time.Time
	Payment           float64
	CumulativePayment float64
}

// FundedPeriod extends Period with the collection outcome for a cohort that
// has a trade. Predicted marks periods whose payment was synthesized by the
// churn projection rather than observed.
type FundedPeriod struct {
	Period
	ThresholdPaymentPercentage *float64
	ThresholdExpectedPayment   *float64
	ThresholdFailed            bool
	ShareApplied               float64
	Collected                  float64
	CumulativeCollected        float64
	Capped                     bool
	Predicted                  bool
}

// Cohort is the per-cohort output of the cashflow engine. Funded is nil for
// cohorts with no trade; those carry payment tracking only and never
// collect.
type Cohort struct {
	CompanyID         int32
	CohortMonth       time.Time
	Spend             float64
	Customers         []string
	Periods           []Period
	CumulativePayment float64

	Funded *FundedCohort
}

func (c Cohort) IsFunded() bool {
	return c.Funded != nil
}

// FundedCohort carries the trade terms and the collection series for a
// funded cohort. AnnualizedIRR is nil when the cash-flow series has no
// solvable rate.
type FundedCohort struct {
	TradeID             int32
	SharingPercentage   float64
	CashCap             float64
	Periods             []FundedPeriod
	CumulativeCollected float64
	Capped              bool
	AnnualizedIRR       *float64
}

// GrossPayments returns the ordered payment amounts of the funded series,
// observed and predicted alike.
func (fc FundedCohort) GrossPayments() []float64 {
	payments := make([]float64, 0, len(fc.Periods))
	for _, p := range fc.Periods {
		payments = append(payments, p.Payment)
	}
	return payments
}
