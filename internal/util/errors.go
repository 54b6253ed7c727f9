package util

import "errors"

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrAlreadyCheckedIn = errors.New("already checked in for this date")
	ErrInvalidDate      = errors.New("invalid date")
)
