package handler

import (
	"encoding/json"
	"net/http"

	"oop-pillars/internal/domain"
	"oop-pillars/internal/errors"
	"oop-pillars/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type CreateAccountRequest struct {
	AccountNumber  string `json:"account_number"`
	InitialBalance string `json:"initial_balance"`
}

type AccountResponse struct {
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
}

func newAccountResponse(account *domain.BankAccount) AccountResponse {
	return AccountResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       domain.FormatAmount(account.Balance()),
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	initialBalance, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidAmount, "invalid initial_balance format"))
		return
	}
	if err := checkStorableAmount("initial_balance", initialBalance); err != nil {
		writeError(w, err)
		return
	}

	account, err := h.accountService.OpenAccount(req.AccountNumber, initialBalance)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newAccountResponse(account))
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["account_number"]

	account, err := h.accountService.GetAccount(accountNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newAccountResponse(account))
}
