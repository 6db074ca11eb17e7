package events

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrExpenseNotFound = errors.New("expense not found")
)
