package service

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
	"oop-pillars/internal/metrics"
	"oop-pillars/internal/repository"
)

type AccountService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewAccountService(store *repository.Store, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:  store,
		logger: logger,
	}
}

func (s *AccountService) OpenAccount(accountNumber string, initialBalance decimal.Decimal) (*domain.BankAccount, error) {
	s.logger.Info("Opening account", "account_number", accountNumber, "initial_balance", initialBalance)

	if strings.TrimSpace(accountNumber) == "" {
		return nil, errors.ErrInvalidAccountNumber
	}

	if initialBalance.IsNegative() {
		return nil, errors.ErrInvalidAmount.WithDetails("initial balance must not be negative")
	}

	account := domain.NewBankAccount(accountNumber, initialBalance)
	if err := s.store.Account().CreateAccount(account); err != nil {
		return nil, err
	}

	metrics.AccountsOpened.Inc()
	s.logger.Info("Account opened", "account_number", account.AccountNumber())
	return account, nil
}

func (s *AccountService) GetAccount(accountNumber string) (*domain.BankAccount, error) {
	s.logger.Info("Getting account", "account_number", accountNumber)

	if strings.TrimSpace(accountNumber) == "" {
		return nil, errors.ErrInvalidAccountNumber
	}

	return s.store.Account().GetAccount(accountNumber)
}
