package api

import (
	"cvf/internal/db/models/postgres/public/model"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type CreateThresholdRequest struct {
	PaymentPeriodMonth    int32   `json:"payment_period_month"`
	MinimumPaymentPercent float64 `json:"minimum_payment_percent"`
}

type ThresholdResponse struct {
	ID                    int32      `json:"id"`
	CompanyID             int32      `json:"company_id"`
	PaymentPeriodMonth    int32      `json:"payment_period_month"`
	MinimumPaymentPercent float64    `json:"minimum_payment_percent"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
}

func thresholdResponseFromModel(t model.Threshold) ThresholdResponse {
	return ThresholdResponse{
		ID:                    t.ID,
		CompanyID:             t.CompanyID,
		PaymentPeriodMonth:    t.PaymentPeriodMonth,
		MinimumPaymentPercent: t.MinimumPaymentPercent,
		CreatedAt:             t.CreatedAt,
	}
}

func (m ApiHandler) createThreshold(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if ok := m.requireCompany(c, companyID); !ok {
		return
	}

	var requestBody CreateThresholdRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.PaymentPeriodMonth < 0 {
		returnErrorJsonCode(fmt.Errorf("payment_period_month cannot be negative"), c, 400)
		return
	}
	if requestBody.MinimumPaymentPercent < 0 || requestBody.MinimumPaymentPercent > 1 {
		returnErrorJsonCode(fmt.Errorf("minimum_payment_percent must be between 0 and 1"), c, 400)
		return
	}

	created, err := m.ThresholdRepository.Add(nil, model.Threshold{
		CompanyID:             companyID,
		PaymentPeriodMonth:    requestBody.PaymentPeriodMonth,
		MinimumPaymentPercent: requestBody.MinimumPaymentPercent,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create threshold: %w", err), c)
		return
	}

	c.JSON(200, thresholdResponseFromModel(*created))
}

func (m ApiHandler) listThresholds(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	thresholds, err := m.ThresholdRepository.List(companyID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]ThresholdResponse, 0, len(thresholds))
	for _, t := range thresholds {
		out = append(out, thresholdResponseFromModel(t))
	}
	c.JSON(200, out)
}
