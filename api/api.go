package api

import (
	"cvf/internal/logger"
	"cvf/internal/repository"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                  *sql.DB
	CompanyRepository   repository.CompanyRepository
	SpendRepository     repository.SpendRepository
	TradeRepository     repository.TradeRepository
	PaymentRepository   repository.PaymentRepository
	ThresholdRepository repository.ThresholdRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to cvf"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "ok"})
	})

	router.POST("/companies", m.createCompany)
	router.GET("/companies", m.listCompanies)
	router.GET("/companies/:companyID", m.getCompany)

	router.POST("/companies/:companyID/spends", m.createSpend)
	router.GET("/companies/:companyID/spends", m.listSpends)

	router.POST("/companies/:companyID/trades", m.createTrade)
	router.GET("/companies/:companyID/trades", m.listTrades)

	router.GET("/companies/:companyID/payments", m.listPayments)
	router.GET("/companies/:companyID/payments/:paymentID", m.getPayment)
	router.DELETE("/companies/:companyID/payments/:paymentID", m.deletePayment)
	router.POST("/companies/:companyID/payments/upload", m.uploadPayments)

	router.POST("/companies/:companyID/thresholds", m.createThreshold)
	router.GET("/companies/:companyID/thresholds", m.listThresholds)

	router.GET("/companies/:companyID/cashflows", m.cashflows)
	router.GET("/companies/:companyID/metrics", m.metrics)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func companyIDParam(c *gin.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("companyID"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid company id %q", c.Param("companyID"))
	}
	return int32(id), nil
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	requestID := uuid.New()
	ctx.Set("requestID", requestID.String())
	ctx.Set(logger.ContextKey, zap.S().With("requestID", requestID.String()))

	start := time.Now().UTC()
	ctx.Next()

	zap.S().Infow("handled request",
		"requestID", requestID.String(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
