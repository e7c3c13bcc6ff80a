package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"oop-pillars/internal/errors"
)

// Money columns are NUMERIC(20, 4).
const amountScale = 4

var amountLimit = decimal.New(1, 20-amountScale)

// checkStorableAmount rejects values the ledger columns would round or
// overflow.
func checkStorableAmount(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(amountScale)) {
		return errors.NewAppErrorf(errors.InvalidAmount, "%s has more than %d decimal places", field, amountScale)
	}
	if amount.Abs().GreaterThanOrEqual(amountLimit) {
		return errors.NewAppErrorf(errors.InvalidAmount, "%s is out of range", field)
	}
	return nil
}

// Response is the envelope for every JSON reply: exactly one of Data and
// Error is set.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, Response{Data: data})
}

// writeError renders err in the error envelope. Anything that is not an
// *errors.AppError is reported as internal_error.
func writeError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewAppError(errors.InternalError, "an unexpected error occurred").WithDetails(err.Error())
	}

	writeEnvelope(w, appErr.HTTPStatus(), Response{Error: &Error{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	}})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
