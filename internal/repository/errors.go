package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateCheckin is returned when the (habit_id, date) unique index
// rejects an insert.
var ErrDuplicateCheckin = errors.New("duplicate check-in")

const mysqlDuplicateEntry = 1062

// isDuplicateKey reports whether err is a unique-constraint violation from
// any of the supported drivers.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	// sqlite: "UNIQUE constraint failed: habit_checkins.habit_id, habit_checkins.date"
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
