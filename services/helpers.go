package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// isDuplicateErr reports whether err is a unique-index violation. MySQL
// surfaces these as error 1062; the string checks cover other dialects
// (the test suite runs on SQLite).
func isDuplicateErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}
