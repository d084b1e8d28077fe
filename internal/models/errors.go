package models

import "errors"

// ErrInvalidTransactionType is returned when a savings transaction type is
// neither "deposit" nor "withdraw".
var ErrInvalidTransactionType = errors.New("transaction type must be \"deposit\" or \"withdraw\"")
