package repository

import (
	"database/sql"
	"log/slog"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
)

// Store is the unit of work over the ledger tables. A Store built by
// WithTransaction shares one *sql.Tx across both repositories.
type Store struct {
	executor SQLExecutor
	logger   *slog.Logger
}

func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		executor: db,
		logger:   logger,
	}
}

// Ping checks connectivity of the underlying database.
func (s *Store) Ping() error {
	db, ok := s.executor.(*sql.DB)
	if !ok {
		return nil
	}
	return db.Ping()
}

func (s *Store) Account() domain.AccountRepository {
	return NewAccountRepository(s.executor, s.logger)
}

// Transaction returns the ledger repository bound to the current executor.
func (s *Store) Transaction() domain.TransactionRepository {
	return NewTransactionRepository(s.executor, s.logger)
}

// WithTransaction runs fn inside one database transaction, committing when
// fn returns nil. Nested calls are rejected.
func (s *Store) WithTransaction(fn func(*Store) error) error {
	db, ok := s.executor.(*sql.DB)
	if !ok {
		return errors.ErrCannotBeginTransaction
	}

	tx, err := db.Begin()
	if err != nil {
		s.logger.Error("Failed to begin transaction", "error", err)
		return errors.NewAppError(errors.InternalError, "failed to begin transaction").WithDetails(err.Error())
	}

	txStore := &Store{
		executor: &TxWrapper{Tx: tx},
		logger:   s.logger,
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txStore); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("Failed to commit transaction", "error", err)
		return errors.NewAppError(errors.InternalError, "failed to commit transaction").WithDetails(err.Error())
	}
	return nil
}
