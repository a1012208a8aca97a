package calculator

import (
	"cvf/internal/domain"

	"github.com/montanaflynn/stats"
)

// CompanyMetrics is the portfolio-level summary derived from a company's
// computed cohorts.
type CompanyMetrics struct {
	OwedThisMonth float64
	BreachesCount int
	MOICToDate    float64
	LTVEstimate   float64
	CACEstimate   float64
}

// ComputeCompanyMetrics summarizes a company's cohorts: MOIC (total observed
// payments over total spend), simple LTV/CAC estimates per cohort, the
// count of threshold breaches across observed funded periods, and the amount
// owed in each cohort's latest period.
func ComputeCompanyMetrics(cohorts []domain.Cohort) CompanyMetrics {
	if len(cohorts) == 0 {
		return CompanyMetrics{}
	}

	spends := make([]float64, 0, len(cohorts))
	payments := make([]float64, 0, len(cohorts))
	owed := 0.0
	breaches := 0
	for _, cohort := range cohorts {
		spends = append(spends, cohort.Spend)
		payments = append(payments, cohort.CumulativePayment)

		if cohort.Funded == nil {
			continue
		}
		for _, period := range cohort.Funded.Periods {
			if period.ThresholdFailed && !period.Predicted {
				breaches++
			}
		}
		if n := len(cohort.Funded.Periods); n > 0 {
			owed += cohort.Funded.Periods[n-1].Collected
		}
	}

	totalSpend, _ := stats.Sum(spends)
	totalPayments, _ := stats.Sum(payments)

	metrics := CompanyMetrics{
		OwedThisMonth: owed,
		BreachesCount: breaches,
	}
	if totalSpend > 0 {
		metrics.MOICToDate = totalPayments / totalSpend
	}
	numCohorts := float64(len(cohorts))
	metrics.LTVEstimate = totalPayments / numCohorts
	metrics.CACEstimate = totalSpend / numCohorts

	return metrics
}
