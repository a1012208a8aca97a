package repository

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PaymentRepository interface {
	List(companyID int32) ([]model.Payment, error)
	Get(companyID, paymentID int32) (*model.Payment, error)
	Add(tx *sql.Tx, p model.Payment) (*model.Payment, error)
	BulkAdd(tx *sql.Tx, payments []model.Payment) (int, error)
	Delete(companyID, paymentID int32) error
}

type paymentRepositoryHandler struct {
	Db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return paymentRepositoryHandler{Db: db}
}

func (h paymentRepositoryHandler) List(companyID int32) ([]model.Payment, error) {
	query := table.Payment.SELECT(table.Payment.AllColumns).
		WHERE(table.Payment.CompanyID.EQ(postgres.Int32(companyID))).
		ORDER_BY(table.Payment.PaymentDate.ASC(), table.Payment.ID.ASC())

	out := []model.Payment{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for company %d: %w", companyID, err)
	}

	return out, nil
}

func (h paymentRepositoryHandler) Get(companyID, paymentID int32) (*model.Payment, error) {
	query := table.Payment.SELECT(table.Payment.AllColumns).
		WHERE(postgres.AND(
			table.Payment.CompanyID.EQ(postgres.Int32(companyID)),
			table.Payment.ID.EQ(postgres.Int32(paymentID)),
		))

	out := model.Payment{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %d: %w", paymentID, err)
	}

	return &out, nil
}

func (h paymentRepositoryHandler) Add(tx *sql.Tx, p model.Payment) (*model.Payment, error) {
	query := table.Payment.INSERT(table.Payment.MutableColumns).
		MODEL(p).
		RETURNING(table.Payment.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Payment{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	return &out, nil
}

func (h paymentRepositoryHandler) BulkAdd(tx *sql.Tx, payments []model.Payment) (int, error) {
	if len(payments) == 0 {
		return 0, nil
	}

	query := table.Payment.INSERT(table.Payment.MutableColumns).
		MODELS(payments)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert payments: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(inserted), nil
}

func (h paymentRepositoryHandler) Delete(companyID, paymentID int32) error {
	query := table.Payment.DELETE().
		WHERE(postgres.AND(
			table.Payment.CompanyID.EQ(postgres.Int32(companyID)),
			table.Payment.ID.EQ(postgres.Int32(paymentID)),
		))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("payment %d not found for company %d: %w", paymentID, companyID, qrm.ErrNoRows)
	}

	return nil
}
