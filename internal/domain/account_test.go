package domain

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oop-pillars/internal/errors"
)

func TestBankAccount_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		initial     decimal.Decimal
		amount      decimal.Decimal
		wantBalance decimal.Decimal
		wantOutput  string
	}{
		{
			name:        "positive amount",
			initial:     decimal.NewFromInt(1000),
			amount:      decimal.NewFromInt(500),
			wantBalance: decimal.NewFromInt(1500),
			wantOutput:  "Deposited: $500.0 | New Balance: $1500.0\n",
		},
		{
			name:        "fractional amount",
			initial:     decimal.NewFromInt(10),
			amount:      decimal.RequireFromString("0.25"),
			wantBalance: decimal.RequireFromString("10.25"),
			wantOutput:  "Deposited: $0.25 | New Balance: $10.25\n",
		},
		{
			name:        "zero amount",
			initial:     decimal.NewFromInt(1000),
			amount:      decimal.Zero,
			wantBalance: decimal.NewFromInt(1000),
			wantOutput:  "Invalid deposit amount!\n",
		},
		{
			name:        "negative amount",
			initial:     decimal.NewFromInt(1000),
			amount:      decimal.NewFromInt(-50),
			wantBalance: decimal.NewFromInt(1000),
			wantOutput:  "Invalid deposit amount!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			account := NewBankAccount("ACC123", tt.initial)

			account.Deposit(&buf, tt.amount)

			assert.True(t, tt.wantBalance.Equal(account.Balance()), "balance %s", account.Balance())
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

func TestBankAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		initial     decimal.Decimal
		amount      decimal.Decimal
		wantBalance decimal.Decimal
		wantOutput  string
	}{
		{
			name:        "within balance",
			initial:     decimal.NewFromInt(1500),
			amount:      decimal.NewFromInt(200),
			wantBalance: decimal.NewFromInt(1300),
			wantOutput:  "Withdrawn: $200.0 | New Balance: $1300.0\n",
		},
		{
			name:        "entire balance",
			initial:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(100),
			wantBalance: decimal.Zero,
			wantOutput:  "Withdrawn: $100.0 | New Balance: $0.0\n",
		},
		{
			name:        "exceeds balance",
			initial:     decimal.NewFromInt(1300),
			amount:      decimal.NewFromInt(2000),
			wantBalance: decimal.NewFromInt(1300),
			wantOutput:  "Insufficient funds!\n",
		},
		{
			name:        "zero amount",
			initial:     decimal.NewFromInt(1300),
			amount:      decimal.Zero,
			wantBalance: decimal.NewFromInt(1300),
			wantOutput:  "Insufficient funds!\n",
		},
		{
			name:        "negative amount",
			initial:     decimal.NewFromInt(1300),
			amount:      decimal.NewFromInt(-1),
			wantBalance: decimal.NewFromInt(1300),
			wantOutput:  "Insufficient funds!\n",
		},
		{
			name:        "negative opening balance",
			initial:     decimal.NewFromInt(-10),
			amount:      decimal.NewFromInt(1),
			wantBalance: decimal.NewFromInt(-10),
			wantOutput:  "Insufficient funds!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			account := NewBankAccount("ACC123", tt.initial)

			account.Withdraw(&buf, tt.amount)

			assert.True(t, tt.wantBalance.Equal(account.Balance()), "balance %s", account.Balance())
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

func TestBankAccount_ApplyErrors(t *testing.T) {
	account := NewBankAccount("ACC123", decimal.NewFromInt(10))

	err := account.ApplyDeposit(decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDepositAmount)

	err = account.ApplyWithdraw(decimal.NewFromInt(11))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInsufficientFunds)

	require.NoError(t, account.ApplyWithdraw(decimal.NewFromInt(10)))
	assert.True(t, account.Balance().IsZero())
}

func TestBankAccount_ScriptedSequence(t *testing.T) {
	var buf bytes.Buffer
	account := NewBankAccount("ACC123", decimal.NewFromFloat(1000.0))

	account.Deposit(&buf, decimal.NewFromInt(500))
	account.Withdraw(&buf, decimal.NewFromInt(200))
	account.Withdraw(&buf, decimal.NewFromInt(2000))

	assert.Equal(t, "Deposited: $500.0 | New Balance: $1500.0\n"+
		"Withdrawn: $200.0 | New Balance: $1300.0\n"+
		"Insufficient funds!\n", buf.String())
	assert.Equal(t, "1300.0", FormatAmount(account.Balance()))
}

func TestBankAccount_ReadersAreStable(t *testing.T) {
	account := NewBankAccount("", decimal.NewFromInt(42))

	for i := 0; i < 3; i++ {
		assert.Equal(t, "", account.AccountNumber())
		assert.True(t, decimal.NewFromInt(42).Equal(account.Balance()))
	}
}
