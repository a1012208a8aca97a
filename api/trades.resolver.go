package api

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/util"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type CreateTradeRequest struct {
	CohortMonth       string  `json:"cohort_month"`
	SharingPercentage float64 `json:"sharing_percentage"`
	CashCap           float64 `json:"cash_cap"`
}

type TradeResponse struct {
	ID                int32      `json:"id"`
	CompanyID         int32      `json:"company_id"`
	CohortMonth       string     `json:"cohort_month"`
	SharingPercentage float64    `json:"sharing_percentage"`
	CashCap           float64    `json:"cash_cap"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

func tradeResponseFromModel(t model.Trade) TradeResponse {
	return TradeResponse{
		ID:                t.ID,
		CompanyID:         t.CompanyID,
		CohortMonth:       t.CohortMonth.Format("2006-01-02"),
		SharingPercentage: t.SharingPercentage,
		CashCap:           t.CashCap,
		CreatedAt:         t.CreatedAt,
	}
}

func (m ApiHandler) createTrade(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if ok := m.requireCompany(c, companyID); !ok {
		return
	}

	var requestBody CreateTradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	cohortMonth, err := time.Parse("2006-01-02", requestBody.CohortMonth)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid cohort_month %q: %w", requestBody.CohortMonth, err), c, 400)
		return
	}
	if requestBody.SharingPercentage < 0 || requestBody.SharingPercentage > 1 {
		returnErrorJsonCode(fmt.Errorf("sharing_percentage must be between 0 and 1"), c, 400)
		return
	}
	if requestBody.CashCap < 0 {
		returnErrorJsonCode(fmt.Errorf("cash_cap cannot be negative"), c, 400)
		return
	}

	created, err := m.TradeRepository.Add(nil, model.Trade{
		CompanyID:         companyID,
		CohortMonth:       util.MonthFloor(cohortMonth),
		SharingPercentage: requestBody.SharingPercentage,
		CashCap:           requestBody.CashCap,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create trade: %w", err), c)
		return
	}

	c.JSON(200, tradeResponseFromModel(*created))
}

func (m ApiHandler) listTrades(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	trades, err := m.TradeRepository.List(companyID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, tradeResponseFromModel(t))
	}
	c.JSON(200, out)
}
