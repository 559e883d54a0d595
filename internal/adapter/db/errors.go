package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoReferencedRow = 1452
)

// duplicateKey returns the constraint name of a duplicate-entry error, or "" for any other error.
func duplicateKey(err error) string {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlErrDuplicateEntry {
		return ""
	}

	// Message looks like: Duplicate entry 'a@b.c' for key 'users.uq_users_email'
	idx := strings.LastIndex(mysqlErr.Message, "for key '")
	if idx < 0 {
		return ""
	}
	key := strings.TrimSuffix(mysqlErr.Message[idx+len("for key '"):], "'")
	if dot := strings.LastIndex(key, "."); dot >= 0 {
		key = key[dot+1:]
	}
	return key
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoReferencedRow
}
