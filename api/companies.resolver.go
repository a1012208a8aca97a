package api

import (
	"cvf/internal/db/models/postgres/public/model"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
)

type CreateCompanyRequest struct {
	Name string `json:"name"`
}

type CompanyResponse struct {
	ID        int32      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func companyResponseFromModel(c model.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func (m ApiHandler) createCompany(c *gin.Context) {
	var requestBody CreateCompanyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("company name is required"), c, 400)
		return
	}

	created, err := m.CompanyRepository.Add(nil, model.Company{Name: requestBody.Name})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create company: %w", err), c)
		return
	}

	c.JSON(200, companyResponseFromModel(*created))
}

func (m ApiHandler) listCompanies(c *gin.Context) {
	companies, err := m.CompanyRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		out = append(out, companyResponseFromModel(company))
	}
	c.JSON(200, out)
}

func (m ApiHandler) getCompany(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	company, err := m.CompanyRepository.Get(companyID)
	if errors.Is(err, qrm.ErrNoRows) {
		returnErrorJsonCode(fmt.Errorf("company %d not found", companyID), c, 404)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, companyResponseFromModel(*company))
}
