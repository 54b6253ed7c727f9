package util

const (
	MsgHabitDeleted     = "Habit deleted successfully"
	MsgDeleteFailed     = "Error deleting habit: "
	MsgAlreadyCheckedIn = "Already checked in for this date"
	MsgInvalidDate      = "Invalid date format, expected YYYY-MM-DD"
	MsgInvalidID        = "Invalid id"
	MsgInternalError    = "Internal server error"
)

// gin context keys
const (
	RequestIDKey = "request_id"
)

const RequestIDHeader = "X-Request-ID"
