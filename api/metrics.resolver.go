package api

import (
	"cvf/internal/calculator"
	"fmt"

	"github.com/gin-gonic/gin"
)

type MetricsResponse struct {
	OwedThisMonth float64 `json:"owed_this_month"`
	BreachesCount int     `json:"breaches_count"`
	MOICToDate    float64 `json:"moic_to_date"`
	LTVEstimate   float64 `json:"ltv_estimate"`
	CACEstimate   float64 `json:"cac_estimate"`
}

func (m ApiHandler) metrics(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if ok := m.requireCompany(c, companyID); !ok {
		return
	}

	records, err := m.companyRecords(companyID, nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	cohorts, err := calculator.ComputeCompanyCashflows(records)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to compute cashflows: %w", err), c, 422)
		return
	}

	computed := calculator.ComputeCompanyMetrics(cohorts)
	c.JSON(200, MetricsResponse{
		OwedThisMonth: computed.OwedThisMonth,
		BreachesCount: computed.BreachesCount,
		MOICToDate:    computed.MOICToDate,
		LTVEstimate:   computed.LTVEstimate,
		CACEstimate:   computed.CACEstimate,
	})
}
