package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

// IsDuplicate reports whether err is a MySQL unique-key violation. Services
// map it to a CONFLICT; the schema's unique keys are the authoritative
// duplicate guard.
func IsDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDuplicateEntry
	}
	return false
}
