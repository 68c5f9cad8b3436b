package service

import "errors"

// Errores de negocio exportados (los usa el controller)
var (
	ErrValidation    = errors.New("validation failed")
	ErrOrderNotFound = errors.New("order not found")
)
