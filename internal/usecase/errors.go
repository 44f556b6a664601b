package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrExtraction   = errors.New("source extraction failed")
	ErrTransform    = errors.New("source transform failed")
	ErrPersistence  = errors.New("persistence failed")
)
