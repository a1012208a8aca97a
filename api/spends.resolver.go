package api

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/util"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type CreateSpendRequest struct {
	CohortMonth string  `json:"cohort_month"`
	Amount      float64 `json:"amount"`
}

type SpendResponse struct {
	ID          int32      `json:"id"`
	CompanyID   int32      `json:"company_id"`
	CohortMonth string     `json:"cohort_month"`
	Amount      float64    `json:"amount"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func spendResponseFromModel(s model.Spend) SpendResponse {
	return SpendResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		CohortMonth: s.CohortMonth.Format("2006-01-02"),
		Amount:      s.Amount,
		CreatedAt:   s.CreatedAt,
	}
}

func (m ApiHandler) createSpend(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if ok := m.requireCompany(c, companyID); !ok {
		return
	}

	var requestBody CreateSpendRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	cohortMonth, err := time.Parse("2006-01-02", requestBody.CohortMonth)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid cohort_month %q: %w", requestBody.CohortMonth, err), c, 400)
		return
	}
	if requestBody.Amount < 0 {
		returnErrorJsonCode(fmt.Errorf("spend amount cannot be negative"), c, 400)
		return
	}

	created, err := m.SpendRepository.Add(nil, model.Spend{
		CompanyID:   companyID,
		CohortMonth: util.MonthFloor(cohortMonth),
		Amount:      requestBody.Amount,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create spend: %w", err), c)
		return
	}

	c.JSON(200, spendResponseFromModel(*created))
}

func (m ApiHandler) listSpends(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	spends, err := m.SpendRepository.List(companyID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]SpendResponse, 0, len(spends))
	for _, s := range spends {
		out = append(out, spendResponseFromModel(s))
	}
	c.JSON(200, out)
}

// requireCompany aborts with a 404 when the company does not exist.
func (m ApiHandler) requireCompany(c *gin.Context, companyID int32) bool {
	exists, err := m.CompanyRepository.Exists(companyID)
	if err != nil {
		returnErrorJson(err, c)
		return false
	}
	if !exists {
		returnErrorJsonCode(fmt.Errorf("company %d not found", companyID), c, 404)
		return false
	}
	return true
}
