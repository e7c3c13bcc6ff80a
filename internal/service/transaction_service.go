package service

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
	"oop-pillars/internal/metrics"
	"oop-pillars/internal/repository"
)

type TransactionService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewTransactionService(store *repository.Store, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

type OperationRequest struct {
	AccountNumber  string
	Amount         decimal.Decimal
	IdempotencyKey *uuid.UUID
}

func (s *TransactionService) Deposit(req *OperationRequest) (*domain.Transaction, error) {
	return s.post(domain.KindDeposit, req)
}

func (s *TransactionService) Withdraw(req *OperationRequest) (*domain.Transaction, error) {
	return s.post(domain.KindWithdrawal, req)
}

// History lists the ledger of an existing account, newest entry first.
func (s *TransactionService) History(accountNumber string) ([]*domain.Transaction, error) {
	if strings.TrimSpace(accountNumber) == "" {
		return nil, errors.ErrInvalidAccountNumber
	}

	if _, err := s.store.Account().GetAccount(accountNumber); err != nil {
		return nil, err
	}

	return s.store.Transaction().ListTransactionsByAccount(accountNumber)
}

// post applies one deposit or withdrawal. The balance rule lives on
// domain.BankAccount; a rejected attempt is still written to the ledger
// (without its idempotency key, so the caller may retry) and its rule error
// is returned.
func (s *TransactionService) post(kind domain.TransactionKind, req *OperationRequest) (*domain.Transaction, error) {
	s.logger.Info("Processing ledger operation",
		"kind", kind,
		"account_number", req.AccountNumber,
		"amount", req.Amount,
		"idempotency_key", req.IdempotencyKey)

	if strings.TrimSpace(req.AccountNumber) == "" {
		return nil, errors.ErrInvalidAccountNumber
	}

	if existing, err := s.replay(kind, req); err != nil || existing != nil {
		return existing, err
	}

	transaction := &domain.Transaction{
		ID:            uuid.New(),
		AccountNumber: req.AccountNumber,
		Kind:          kind,
		Amount:        req.Amount,
	}

	var ruleErr error
	err := s.store.WithTransaction(func(tx *repository.Store) error {
		account, err := tx.Account().GetAccountForUpdate(req.AccountNumber)
		if err != nil {
			return err
		}

		switch kind {
		case domain.KindDeposit:
			ruleErr = account.ApplyDeposit(req.Amount)
		case domain.KindWithdrawal:
			ruleErr = account.ApplyWithdraw(req.Amount)
		}
		transaction.BalanceAfter = account.Balance()

		if ruleErr != nil {
			transaction.Status = domain.StatusRejected
			return tx.Transaction().CreateTransaction(transaction)
		}

		if err := tx.Account().UpdateAccountBalance(req.AccountNumber, account.Balance()); err != nil {
			return err
		}

		transaction.Status = domain.StatusCompleted
		transaction.IdempotencyKey = req.IdempotencyKey
		return tx.Transaction().CreateTransaction(transaction)
	})
	if err != nil {
		// A concurrent request with the same key committed first.
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.DuplicateTransaction && req.IdempotencyKey != nil {
			if existing, replayErr := s.replay(kind, req); replayErr != nil || existing != nil {
				return existing, replayErr
			}
		}
		s.logger.Error("Ledger operation failed", "kind", kind, "account_number", req.AccountNumber, "error", err)
		return nil, err
	}

	metrics.LedgerOperations.WithLabelValues(string(kind), string(transaction.Status)).Inc()

	if ruleErr != nil {
		s.logger.Warn("Ledger operation rejected",
			"kind", kind,
			"account_number", req.AccountNumber,
			"amount", req.Amount,
			"reason", ruleErr)
		return nil, ruleErr
	}

	s.logger.Info("Ledger operation completed", "transaction_id", transaction.ID, "balance", transaction.BalanceAfter)
	return transaction, nil
}

// replay returns the entry already stored under req's idempotency key, or
// nil when there is no key or no entry. A key stored for a different
// account, kind or amount is ErrDuplicateTransaction.
func (s *TransactionService) replay(kind domain.TransactionKind, req *OperationRequest) (*domain.Transaction, error) {
	if req.IdempotencyKey == nil {
		return nil, nil
	}

	existing, err := s.store.Transaction().GetTransactionByIdempotencyKey(*req.IdempotencyKey)
	if err != nil || existing == nil {
		return nil, err
	}

	if existing.AccountNumber != req.AccountNumber || existing.Kind != kind || !existing.Amount.Equal(req.Amount) {
		return nil, errors.ErrDuplicateTransaction.WithDetails("idempotency key was used for a different operation")
	}

	s.logger.Info("Returning existing transaction for idempotency key",
		"idempotency_key", req.IdempotencyKey,
		"transaction_id", existing.ID)
	return existing, nil
}
