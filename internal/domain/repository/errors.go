package repository

import "errors"

// Sentinel errors returned (optionally wrapped) by store implementations.
// Usecases translate them into apperror kinds.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
