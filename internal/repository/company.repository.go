package repository

import (
	"cvf/internal/db/models/postgres/public/model"
	"cvf/internal/db/models/postgres/public/table"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type CompanyRepository interface {
	Get(companyID int32) (*model.Company, error)
	List() ([]model.Company, error)
	Add(tx *sql.Tx, c model.Company) (*model.Company, error)
	Exists(companyID int32) (bool, error)
}

type companyRepositoryHandler struct {
	Db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return companyRepositoryHandler{Db: db}
}

func (h companyRepositoryHandler) Get(companyID int32) (*model.Company, error) {
	query := table.Company.SELECT(table.Company.AllColumns).
		WHERE(table.Company.ID.EQ(postgres.Int32(companyID)))

	out := model.Company{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %d: %w", companyID, err)
	}

	return &out, nil
}

func (h companyRepositoryHandler) List() ([]model.Company, error) {
	query := table.Company.SELECT(table.Company.AllColumns).
		ORDER_BY(table.Company.Name.ASC())

	out := []model.Company{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return out, nil
}

func (h companyRepositoryHandler) Add(tx *sql.Tx, c model.Company) (*model.Company, error) {
	query := table.Company.INSERT(table.Company.MutableColumns).
		MODEL(c).
		RETURNING(table.Company.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Company{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return &out, nil
}

func (h companyRepositoryHandler) Exists(companyID int32) (bool, error) {
	_, err := h.Get(companyID)
	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
