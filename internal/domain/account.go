package domain

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"oop-pillars/internal/errors"
)

// BankAccount keeps its number and balance private. The number is fixed at
// construction; the balance moves only through deposits and withdrawals.
type BankAccount struct {
	accountNumber string
	balance       decimal.Decimal
}

// NewBankAccount accepts any initial balance, negative included.
func NewBankAccount(accountNumber string, initialBalance decimal.Decimal) *BankAccount {
	return &BankAccount{
		accountNumber: accountNumber,
		balance:       initialBalance,
	}
}

func (a *BankAccount) AccountNumber() string {
	return a.accountNumber
}

func (a *BankAccount) Balance() decimal.Decimal {
	return a.balance
}

// ApplyDeposit credits a positive amount. Anything else leaves the balance
// untouched and returns ErrInvalidDepositAmount.
func (a *BankAccount) ApplyDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.ErrInvalidDepositAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// ApplyWithdraw debits amount when 0 < amount <= balance, otherwise it
// returns ErrInsufficientFunds and the balance is unchanged.
func (a *BankAccount) ApplyWithdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(a.balance) {
		return errors.ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Deposit reports the outcome on w only; callers get no error back.
func (a *BankAccount) Deposit(w io.Writer, amount decimal.Decimal) {
	if err := a.ApplyDeposit(amount); err != nil {
		fmt.Fprintln(w, "Invalid deposit amount!")
		return
	}
	fmt.Fprintf(w, "Deposited: $%s | New Balance: $%s\n", FormatAmount(amount), FormatAmount(a.balance))
}

// Withdraw reports the outcome on w only; callers get no error back.
func (a *BankAccount) Withdraw(w io.Writer, amount decimal.Decimal) {
	if err := a.ApplyWithdraw(amount); err != nil {
		fmt.Fprintln(w, "Insufficient funds!")
		return
	}
	fmt.Fprintf(w, "Withdrawn: $%s | New Balance: $%s\n", FormatAmount(amount), FormatAmount(a.balance))
}

type AccountRepository interface {
	CreateAccount(account *BankAccount) error
	GetAccount(accountNumber string) (*BankAccount, error)
	GetAccountForUpdate(accountNumber string) (*BankAccount, error)
	UpdateAccountBalance(accountNumber string, newBalance decimal.Decimal) error
}
