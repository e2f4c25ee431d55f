package store

import (
	"Groeneweide-Backend/domain"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	pgForeignKeyMismatch = "23503"
	mysqlNoReferencedRow = 1452
)

// IsUniqueViolation reports whether err is a unique or primary key violation
// from either supported driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return false
}

func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyMismatch
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow
	}
	return false
}

// Wrap maps a driver error into the rejection kinds. Errors that already carry
// a kind pass through unchanged.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	if domain.KindOf(err) != domain.KindUnknown {
		return err
	}
	switch {
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, op)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrInvalidReference, op)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
