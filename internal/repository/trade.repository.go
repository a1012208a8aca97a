package repository

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type TradeRepository interface {
	List(companyID int32) ([]model.Trade, error)
	Add(tx *sql.Tx, t model.Trade) (*model.Trade, error)
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) List(companyID int32) ([]model.Trade, error) {
	query := table.Trade.SELECT(table.Trade.AllColumns).
		WHERE(table.Trade.CompanyID.EQ(postgres.Int32(companyID))).
		ORDER_BY(table.Trade.CohortMonth.ASC())

	out := []model.Trade{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for company %d: %w", companyID, err)
	}

	return out, nil
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, t model.Trade) (*model.Trade, error) {
	query := table.Trade.INSERT(table.Trade.MutableColumns).
		MODEL(t).
		RETURNING(table.Trade.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Trade{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade: %w", err)
	}

	return &out, nil
}
