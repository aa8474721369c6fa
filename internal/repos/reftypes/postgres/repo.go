package reftypes

import (
	"database/sql"

	"github.com/fastprodman/assetledger/internal/repos/reftypes"
)

var _ reftypes.RefTypes = (*refTypesRepo)(nil)

type refTypesRepo struct{ db *sql.DB }

func New(db *sql.DB) *refTypesRepo {
	return &refTypesRepo{db: db}
}
