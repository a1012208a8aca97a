package calculator

import (
	"cvf/internal/domain"
	"cvf/internal/util"
	"sort"
	"time"
)

// aggregatePeriods buckets a cohort's payments into elapsed-period buckets,
// one per distinct calendar month that saw at least one payment, in
// chronological order. The period index is the ordinal position among those
// observed months: a cohort that paid in months 0, 1 and 3 produces exactly
// three periods (0, 1, 2) and calendar month 2 is skipped, not emitted as a
// zero-payment period.
func aggregatePeriods(payments []domain.PaymentRecord) []domain.Period {
	totals := map[time.Time]float64{}
	for _, p := range payments {
		month := util.MonthFloor(p.PaymentDate)
		totals[month] += p.Amount
	}

	months := make([]time.Time, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	periods := make([]domain.Period, 0, len(months))
	cumulative := 0.0
	for i, month := range months {
		cumulative += totals[month]
		periods = append(periods, domain.Period{
			Index:             i,
			Month:             month,
			Payment:           totals[month],
			CumulativePayment: cumulative,
		})
	}

	return periods
}

// distinctCustomers returns the cohort's customer ids, deduplicated and
// sorted so repeated runs produce identical output.
func distinctCustomers(payments []domain.PaymentRecord) []string {
	seen := map[string]bool{}
	customers := []string{}
	for _, p := range payments {
		if !seen[p.CustomerID] {
			seen[p.CustomerID] = true
			customers = append(customers, p.CustomerID)
		}
	}
	sort.Strings(customers)
	return customers
}
