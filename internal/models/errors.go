package models

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrSettlementExists    = errors.New("settlement event already exists")
	ErrSettlementNotFound  = errors.New("settlement event not found")
)
