package attendance

import "errors"

var (
	ErrLedgerNotFound = errors.New("attendance ledger not found")
	ErrInvalidMonth   = errors.New("invalid month format")
)
