package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
)

const transactionColumns = `id, account_number, kind, amount, balance_after, idempotency_key, status, created_at, updated_at`

type transactionRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransactionRepository(db SQLExecutor, logger *slog.Logger) domain.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) CreateTransaction(tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	now := time.Now()

	var idempotencyKey any
	if tx.IdempotencyKey != nil {
		idempotencyKey = *tx.IdempotencyKey
	}

	_, err := r.db.Exec(
		query,
		tx.ID,
		tx.AccountNumber,
		string(tx.Kind),
		tx.Amount.String(),
		tx.BalanceAfter.String(),
		idempotencyKey,
		string(tx.Status),
		now,
		now,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "idx_transactions_idempotency_key" {
				r.logger.Warn("Duplicate idempotency key", "idempotency_key", tx.IdempotencyKey)
				return errors.ErrDuplicateTransaction
			}
		}
		r.logger.Error("Failed to create transaction",
			"account_number", tx.AccountNumber,
			"kind", tx.Kind,
			"amount", tx.Amount,
			"error", err)
		return errors.NewAppError(errors.InternalError, "failed to create transaction").WithDetails(err.Error())
	}

	tx.CreatedAt = now
	tx.UpdatedAt = now
	r.logger.Info("Transaction recorded", "transaction_id", tx.ID, "status", tx.Status)
	return nil
}

func (r *transactionRepository) GetTransactionByIdempotencyKey(key uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE idempotency_key = $1`

	transaction, err := scanTransaction(r.db.QueryRow(query, key))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get transaction", "idempotency_key", key, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get transaction").WithDetails(err.Error())
	}
	return transaction, nil
}

func (r *transactionRepository) ListTransactionsByAccount(accountNumber string) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_number = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, accountNumber)
	if err != nil {
		r.logger.Error("Failed to list transactions", "account_number", accountNumber, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to list transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	transactions := []*domain.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, errors.NewAppError(errors.InternalError, "failed to read transaction").WithDetails(err.Error())
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.InternalError, "failed to list transactions").WithDetails(err.Error())
	}

	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		transaction     domain.Transaction
		kind, status    string
		amountStr       string
		balanceAfterStr string
		idempotencyKey  sql.NullString
	)

	err := row.Scan(
		&transaction.ID,
		&transaction.AccountNumber,
		&kind,
		&amountStr,
		&balanceAfterStr,
		&idempotencyKey,
		&status,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.Kind = domain.TransactionKind(kind)
	transaction.Status = domain.TransactionStatus(status)

	if transaction.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, err
	}
	if transaction.BalanceAfter, err = decimal.NewFromString(balanceAfterStr); err != nil {
		return nil, err
	}

	if idempotencyKey.Valid {
		key, err := uuid.Parse(idempotencyKey.String)
		if err != nil {
			return nil, err
		}
		transaction.IdempotencyKey = &key
	}

	return &transaction, nil
}
