package repository

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type ThresholdRepository interface {
	List(companyID int32) ([]model.Threshold, error)
	Add(tx *sql.Tx, t model.Threshold) (*model.Threshold, error)
}

type thresholdRepositoryHandler struct {
	Db *sql.DB
}

func NewThresholdRepository(db *sql.DB) ThresholdRepository {
	return thresholdRepositoryHandler{Db: db}
}

func (h thresholdRepositoryHandler) List(companyID int32) ([]model.Threshold, error) {
	query := table.Threshold.SELECT(table.Threshold.AllColumns).
		WHERE(table.Threshold.CompanyID.EQ(postgres.Int32(companyID))).
		ORDER_BY(table.Threshold.PaymentPeriodMonth.ASC())

	out := []model.Threshold{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list thresholds for company %d: %w", companyID, err)
	}

	return out, nil
}

func (h thresholdRepositoryHandler) Add(tx *sql.Tx, t model.Threshold) (*model.Threshold, error) {
	query := table.Threshold.INSERT(table.Threshold.MutableColumns).
		MODEL(t).
		RETURNING(table.Threshold.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Threshold{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert threshold: %w", err)
	}

	return &out, nil
}
