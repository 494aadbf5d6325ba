package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrLLMUnavailable  = errors.New("llm service unavailable")
	ErrGoogleNotLinked = errors.New("google account not linked")
)
