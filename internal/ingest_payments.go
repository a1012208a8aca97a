package internal

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/repository"
	"cvf/internal/util"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type paymentCsvRow struct {
	CustomerID  string `csv:"customer_id"`
	PaymentDate string `csv:"payment_date"`
	Amount      string `csv:"amount"`
}

const paymentInsertBatchSize = 500

// IngestPayments parses a payments CSV (customer_id, payment_date, amount),
// assigns each payment's cohort month as its customer's first observed
// payment month (previously stored payments included), and bulk inserts the
// rows. Amounts are parsed exactly and must be non-negative; any invalid row
// aborts the whole file.
func IngestPayments(
	tx *sql.Tx,
	companyID int32,
	r io.Reader,
	paymentRepository repository.PaymentRepository,
) (int, error) {
	rows := []*paymentCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse payments csv: %w", err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("payments csv has no rows")
	}

	existing, err := paymentRepository.List(companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to load existing payments: %w", err)
	}
	firstPaymentMonth := map[string]time.Time{}
	for _, p := range existing {
		month := util.MonthFloor(p.CohortMonth)
		if current, ok := firstPaymentMonth[p.CustomerID]; !ok || month.Before(current) {
			firstPaymentMonth[p.CustomerID] = month
		}
	}

	payments := make([]model.Payment, 0, len(rows))
	for i, row := range rows {
		if row.CustomerID == "" {
			return 0, fmt.Errorf("row %d: missing customer_id", i+1)
		}
		paymentDate, err := time.Parse("2006-01-02", row.PaymentDate)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid payment_date %q: %w", i+1, row.PaymentDate, err)
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid amount %q: %w", i+1, row.Amount, err)
		}
		if amount.IsNegative() {
			return 0, fmt.Errorf("row %d: negative amount %s", i+1, row.Amount)
		}

		month := util.MonthFloor(paymentDate)
		if current, ok := firstPaymentMonth[row.CustomerID]; !ok || month.Before(current) {
			firstPaymentMonth[row.CustomerID] = month
		}

		payments = append(payments, model.Payment{
			CompanyID:   companyID,
			CustomerID:  row.CustomerID,
			PaymentDate: paymentDate,
			Amount:      amount.InexactFloat64(),
		})
	}

	for i := range payments {
		payments[i].CohortMonth = firstPaymentMonth[payments[i].CustomerID]
	}

	bar := progressbar.Default(int64(len(payments)))
	inserted := 0
	for start := 0; start < len(payments); start += paymentInsertBatchSize {
		end := min(start+paymentInsertBatchSize, len(payments))
		n, err := paymentRepository.BulkAdd(tx, payments[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += n
		_ = bar.Add(end - start)
	}

	zap.S().Infow("ingested payments csv", "companyID", companyID, "rows", inserted)

	return inserted, nil
}
