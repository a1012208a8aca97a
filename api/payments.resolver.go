package api

import (
	"cvf/internal"
	"cvf/internal/db/models/postgres/public/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
)

type PaymentResponse struct {
	ID          int32      `json:"id"`
	CompanyID   int32      `json:"company_id"`
	CustomerID  string     `json:"customer_id"`
	PaymentDate string     `json:"payment_date"`
	CohortMonth string     `json:"cohort_month"`
	Amount      float64    `json:"amount"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type UploadPaymentsResponse struct {
	Inserted int `json:"inserted"`
}

func paymentResponseFromModel(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CustomerID:  p.CustomerID,
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		CohortMonth: p.CohortMonth.Format("2006-01-02"),
		Amount:      p.Amount,
		CreatedAt:   p.CreatedAt,
	}
}

func paymentIDParam(c *gin.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("paymentID"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid payment id %q", c.Param("paymentID"))
	}
	return int32(id), nil
}

func (m ApiHandler) listPayments(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	payments, err := m.PaymentRepository.List(companyID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentResponseFromModel(p))
	}
	c.JSON(200, out)
}

func (m ApiHandler) getPayment(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	paymentID, err := paymentIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	payment, err := m.PaymentRepository.Get(companyID, paymentID)
	if errors.Is(err, qrm.ErrNoRows) {
		returnErrorJsonCode(fmt.Errorf("payment %d not found", paymentID), c, 404)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, paymentResponseFromModel(*payment))
}

func (m ApiHandler) deletePayment(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	paymentID, err := paymentIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err = m.PaymentRepository.Delete(companyID, paymentID)
	if errors.Is(err, qrm.ErrNoRows) {
		returnErrorJsonCode(fmt.Errorf("payment %d not found", paymentID), c, 404)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": paymentID})
}

func (m ApiHandler) uploadPayments(c *gin.Context) {
	companyID, err := companyIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if ok := m.requireCompany(c, companyID); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("missing file upload: %w", err), c, 400)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open upload: %w", err), c)
		return
	}
	defer file.Close()

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	inserted, err := internal.IngestPayments(tx, companyID, file, m.PaymentRepository)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to ingest payments: %w", err), c, 400)
		return
	}
	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, UploadPaymentsResponse{Inserted: inserted})
}
