package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
)

type accountRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAccountRepository(db SQLExecutor, logger *slog.Logger) domain.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) CreateAccount(account *domain.BankAccount) error {
	query := `
		INSERT INTO accounts (account_number, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		account.AccountNumber(),
		account.Balance().String(),
		now,
		now,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				r.logger.Warn("Duplicate account creation attempt", "account_number", account.AccountNumber())
				return errors.ErrDuplicateAccount
			}
		}
		r.logger.Error("Failed to create account", "account_number", account.AccountNumber(), "error", err)
		return errors.NewAppError(errors.InternalError, "failed to create account").WithDetails(err.Error())
	}

	r.logger.Info("Account created", "account_number", account.AccountNumber())
	return nil
}

func (r *accountRepository) GetAccount(accountNumber string) (*domain.BankAccount, error) {
	query := `SELECT account_number, balance FROM accounts WHERE account_number = $1`

	return r.scanAccount(query, accountNumber)
}

// GetAccountForUpdate locks the row until the surrounding transaction ends.
func (r *accountRepository) GetAccountForUpdate(accountNumber string) (*domain.BankAccount, error) {
	query := `SELECT account_number, balance FROM accounts WHERE account_number = $1 FOR UPDATE`

	return r.scanAccount(query, accountNumber)
}

func (r *accountRepository) scanAccount(query string, accountNumber string) (*domain.BankAccount, error) {
	var number, balanceStr string

	err := r.db.QueryRow(query, accountNumber).Scan(&number, &balanceStr)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Account not found", "account_number", accountNumber)
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account", "account_number", accountNumber, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get account").WithDetails(err.Error())
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		r.logger.Error("Failed to parse balance", "account_number", accountNumber, "balance_str", balanceStr, "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to parse balance").WithDetails(err.Error())
	}

	return domain.NewBankAccount(number, balance), nil
}

func (r *accountRepository) UpdateAccountBalance(accountNumber string, newBalance decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = $1, updated_at = $2
		WHERE account_number = $3
	`

	result, err := r.db.Exec(query, newBalance.String(), time.Now(), accountNumber)
	if err != nil {
		r.logger.Error("Failed to update account balance", "account_number", accountNumber, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to update account balance").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("No account found to update", "account_number", accountNumber)
		return errors.ErrAccountNotFound
	}

	r.logger.Info("Account balance updated", "account_number", accountNumber, "new_balance", newBalance)
	return nil
}
