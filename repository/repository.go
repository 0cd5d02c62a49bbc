// Package repository is the document store adapter. Every write touches exactly one
// row; nothing here opens a transaction across rows.
package repository

import (
	"errors"

	"scholarhub/apperror"

	"gorm.io/gorm"
)

// translate maps gorm errors to apperror kinds. what names the missing thing.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.Wrap(apperror.NotFound, what+" not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Wrap(apperror.Conflict, what+" already exists", err)
	default:
		return apperror.Wrap(apperror.Internal, "database error on "+what, err)
	}
}
