package api

import (
	"cvf/internal/calculator"
	"cvf/internal/domain"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

type periodJson struct {
	Index             int     `json:"index"`
	Month             string  `json:"month"`
	Payment           float64 `json:"payment"`
	CumulativePayment float64 `json:"cumulative_payment"`
}

type fundedPeriodJson struct {
	periodJson
	ThresholdPaymentPercentage *float64 `json:"threshold_payment_percentage"`
	ThresholdExpectedPayment   *float64 `json:"threshold_expected_payment"`
	ThresholdFailed            bool     `json:"threshold_failed"`
	ShareApplied               float64  `json:"share_applied"`
	Collected                  float64  `json:"collected"`
	CumulativeCollected        float64  `json:"cumulative_collected"`
	Capped                     bool     `json:"capped"`
	Predicted                  bool     `json:"predicted"`
}

type fundedCohortJson struct {
	TradeID             int32              `json:"trade_id"`
	SharingPercentage   float64            `json:"sharing_percentage"`
	CashCap             float64            `json:"cash_cap"`
	Periods             []fundedPeriodJson `json:"periods"`
	CumulativeCollected float64            `json:"cumulative_collected"`
	Capped              bool               `json:"capped"`
	AnnualizedIRR       *float64           `json:"annualized_irr"`
}

type cohortJson struct {
	CompanyID         int32             `json:"company_id"`
	CohortMonth       string            `json:"cohort_month"`
	Spend             float64           `json:"spend"`
	Customers         []string          `json:"customers"`
	Periods           []periodJson      `json:"periods"`
	CumulativePayment float64           `json:"cumulative_payment"`
	Funded            *fundedCohortJson `json:"funded"`
}

func periodToJson(p domain.Period) periodJson {
	return periodJson{
		Index:             p.Index,
		Month:             p.Month.Format("2006-01-02"),
		Payment:           p.Payment,
		CumulativePayment: p.CumulativePayment,
	}
}

func cohortToJson(cohort domain.Cohort) cohortJson {
	out := cohortJson{
		CompanyID:         cohort.CompanyID,
		CohortMonth:       cohort.CohortMonth.Format("2006-01-02"),
		Spend:             cohort.Spend,
		Customers:         cohort.Customers,
		Periods:           make([]periodJson, 0, len(cohort.Periods)),
		CumulativePayment: cohort.CumulativePayment,
	}
	for _, p := range cohort.Periods {
		out.Periods = append(out.Periods, periodToJson(p))
	}

	if cohort.Funded == nil {
		return out
	}
	funded := fundedCohortJson{
		TradeID:             cohort.Funded.TradeID,
		SharingPercentage:   cohort.Funded.SharingPercentage,
		CashCap:             cohort.Funded.CashCap,
		Periods:             make([]fundedPeriodJson, 0, len(cohort.Funded.Periods)),
		CumulativeCollected: cohort.Funded.CumulativeCollected,
		Capped:              cohort.Funded.Capped,
		AnnualizedIRR:       cohort.Funded.AnnualizedIRR,
	}
	for _, p := range cohort.Funded.Periods {
		funded.Periods = append(funded.Periods, fundedPeriodJson{
			periodJson:                 periodToJson(p.Period),
			ThresholdPaymentPercentage: p.ThresholdPaymentPercentage,
			ThresholdExpectedPayment:   p.ThresholdExpectedPayment,
			ThresholdFailed:            p.ThresholdFailed,
			ShareApplied:               p.ShareApplied,
			Collected:                  p.Collected,
			CumulativeCollected:        p.CumulativeCollected,
			Capped:                     p.Capped,
			Predicted:                  p.Predicted,
		})
	}
	out.Funded = &funded

	return out
}

// churnParam parses the optional churn query param. Churn enables the
// projection and must be in [0, 1).
func churnParam(c *gin.Context) (*float64, error) {
	raw, ok := c.GetQuery("churn")
	if !ok {
		return nil, nil
	}
	churn, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid churn %q", raw)
	}
	if churn < 0 || churn >= 1 {
		return nil, fmt.Errorf("churn must be in [0, 1), got %f", churn)
	}
	return &churn, nil
}

func (m ApiHandler) companyRecords(companyID int32, churn *float64) (calculator.CompanyRecords, error) {
	spends, err := m.SpendRepository.List(companyID)
	if err != nil {
		return calculator.CompanyRecords{}, err
	}
	trades, err := m.TradeRepository.List(companyID)
	if err != nil {
		return calculator.CompanyRecords{}, err
	}
	payments, err := m.PaymentRepository.List(companyID)
	if err != nil {
		return calculator.CompanyRecords{}, err
	}
	thresholds, err := m.ThresholdRepository.List(companyID)
	if err != nil {
		return calculator.CompanyRecords{}, err
	}

	return calculator.RecordsFromModels(companyID, spends, trades, payments, thresholds, churn), nil
}

func (m ApiHandler) cashflows(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if ok := m.requireCompany(c, companyID); !ok {
		return
	}
	churn, err := churnParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	records, err := m.companyRecords(companyID, churn)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	cohorts, err := calculator.ComputeCompanyCashflows(records)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to compute cashflows: %w", err), c, 422)
		return
	}

	out := make([]cohortJson, 0, len(cohorts))
	for _, cohort := range cohorts {
		out = append(out, cohortToJson(cohort))
	}
	c.JSON(200, out)
}
