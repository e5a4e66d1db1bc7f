package domain

import (
	"errors"
	"net/http"
)

const (
	ErrMsgInternalServerError = "internal server error"
	ErrMsgBadRequest          = "bad request"
	ErrMsgParamsBadRequest    = "bad request: %s"

	ErrMsgUserNotFound    = "user not found"
	ErrMsgSessionNotFound = "no mining session found"
	ErrMsgBalanceNotFound = "no balance found"

	ErrMsgInsufficientFundsParams = "insufficient balance. available: %s"

	ErrMsgMiningAlreadyActive = "mining session already active"
	ErrMsgMiningNotActive     = "no active mining session"
	ErrMsgZeroMiningBalance   = "no mining balance to withdraw"

	ErrMsgSameCrypto     = "cannot swap a currency into itself"
	ErrMsgInvalidCrypto  = "invalid cryptocurrency"
	ErrMsgEmptyAddress   = "address must not be empty"
	ErrMsgInvalidAmount  = "amount must be positive with at most 8 decimal places"
	ErrMsgNoWalletSaved  = "no matching wallet address found"
	ErrMsgInitBalances   = "can't init balances"
)

// Failure kinds. Every operation error wraps exactly one of these so
// callers can distinguish the kind without parsing messages.
var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("invalid state")
	ErrValidation          = errors.New("validation error")
	ErrAddressMismatch     = errors.New("address mismatch")
)

func GetStatusByErr(err error) (status int) {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInsufficientBalance):
		status = http.StatusBadRequest
	case errors.Is(err, ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, ErrAddressMismatch):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	return status
}
