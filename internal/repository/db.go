package repository

import (
	"database/sql"
)

// SQLExecutor is the query surface shared by *sql.DB and *sql.Tx, so the
// repositories run unchanged inside or outside a transaction.
type SQLExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	_ SQLExecutor = (*sql.DB)(nil)
	_ SQLExecutor = (*TxWrapper)(nil)
)

// TxWrapper adapts *sql.Tx to SQLExecutor.
type TxWrapper struct {
	*sql.Tx
}
