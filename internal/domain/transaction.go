package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
)

// Transaction is one ledger entry against an account. Rejected entries keep
// the balance observed at the time of the attempt.
type Transaction struct {
	ID             uuid.UUID         `json:"id"`
	AccountNumber  string            `json:"account_number"`
	Kind           TransactionKind   `json:"kind"`
	Amount         decimal.Decimal   `json:"amount"`
	BalanceAfter   decimal.Decimal   `json:"balance_after"`
	IdempotencyKey *uuid.UUID        `json:"idempotency_key,omitempty"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	// GetTransactionByIdempotencyKey returns nil, nil when no entry carries key.
	GetTransactionByIdempotencyKey(key uuid.UUID) (*Transaction, error)
	ListTransactionsByAccount(accountNumber string) ([]*Transaction, error)
}
