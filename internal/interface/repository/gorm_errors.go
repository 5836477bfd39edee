package repository

import (
	"errors"
	"fmt"
	"strings"

	"stargate-service/internal/domain/repository"

	"gorm.io/gorm"
)

// translateError maps gorm errors onto the domain sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDuplicate) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	}

	return err
}

// isUniqueViolation catches drivers that do not implement gorm's error translation
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
