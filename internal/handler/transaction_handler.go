package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
	"oop-pillars/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

type OperationRequest struct {
	Amount         string `json:"amount"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type TransactionResponse struct {
	TransactionID  string  `json:"transaction_id"`
	AccountNumber  string  `json:"account_number"`
	Kind           string  `json:"kind"`
	Amount         string  `json:"amount"`
	BalanceAfter   string  `json:"balance_after"`
	Status         string  `json:"status"`
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func newTransactionResponse(tx *domain.Transaction) TransactionResponse {
	response := TransactionResponse{
		TransactionID: tx.ID.String(),
		AccountNumber: tx.AccountNumber,
		Kind:          string(tx.Kind),
		Amount:        domain.FormatAmount(tx.Amount),
		BalanceAfter:  domain.FormatAmount(tx.BalanceAfter),
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt.UTC().Format(time.RFC3339),
	}

	if tx.IdempotencyKey != nil {
		keyStr := tx.IdempotencyKey.String()
		response.IdempotencyKey = &keyStr
	}

	return response
}

func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.transactionService.Deposit)
}

func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.transactionService.Withdraw)
}

func (h *TransactionHandler) post(
	w http.ResponseWriter,
	r *http.Request,
	apply func(*service.OperationRequest) (*domain.Transaction, error),
) {
	var req OperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidAmount, "invalid amount format").WithDetails(err.Error()))
		return
	}
	if err := checkStorableAmount("amount", amount); err != nil {
		writeError(w, err)
		return
	}

	var idempotencyKey *uuid.UUID
	if req.IdempotencyKey != "" {
		key, err := uuid.Parse(req.IdempotencyKey)
		if err != nil {
			writeError(w, errors.NewAppError(errors.InvalidInput, "invalid idempotency_key format").WithDetails(err.Error()))
			return
		}
		idempotencyKey = &key
	}

	transaction, err := apply(&service.OperationRequest{
		AccountNumber:  mux.Vars(r)["account_number"],
		Amount:         amount,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newTransactionResponse(transaction))
}

func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.History(mux.Vars(r)["account_number"])
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, newTransactionResponse(tx))
	}

	writeJSON(w, http.StatusOK, response)
}
