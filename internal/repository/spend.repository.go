package repository

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SpendRepository interface {
	List(companyID int32) ([]model.Spend, error)
	Add(tx *sql.Tx, s model.Spend) (*model.Spend, error)
}

type spendRepositoryHandler struct {
	Db *sql.DB
}

func NewSpendRepository(db *sql.DB) SpendRepository {
	return spendRepositoryHandler{Db: db}
}

func (h spendRepositoryHandler) List(companyID int32) ([]model.Spend, error) {
	query := table.Spend.SELECT(table.Spend.AllColumns).
		WHERE(table.Spend.CompanyID.EQ(postgres.Int32(companyID))).
		ORDER_BY(table.Spend.CohortMonth.ASC())

	out := []model.Spend{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list spends for company %d: %w", companyID, err)
	}

	return out, nil
}

func (h spendRepositoryHandler) Add(tx *sql.Tx, s model.Spend) (*model.Spend, error) {
	query := table.Spend.INSERT(table.Spend.MutableColumns).
		MODEL(s).
		RETURNING(table.Spend.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Spend{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert spend: %w", err)
	}

	return &out, nil
}
