package domain

import "errors"

// Sentinel errors for the trading core. Callers match with errors.Is and
// surface them at the command boundary; none of these is fatal.
var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidPrice     = errors.New("price must be in (0,1)")
	ErrInvalidSide      = errors.New("side must be yes or no")
	ErrMarketNotFound   = errors.New("market not found")
	ErrDuplicateMarket  = errors.New("market identifier already in use")
	ErrMarketNotActive  = errors.New("market is not active")
	ErrEmptyQuestion    = errors.New("market question is empty")
	ErrUnknownCategory  = errors.New("unknown market category")
	ErrResolutionInPast = errors.New("resolution date must be in the future")

	ErrInsufficientBalance = errors.New("amount exceeds spendable balance")
	ErrConnectionFailed    = errors.New("wallet connection failed")
	ErrWalletNotConnected  = errors.New("wallet is not connected")
)
