package domain

import "errors"

// Error kinds. Every domain error wraps exactly one of them so the HTTP
// layer can pick a status without knowing each individual error.
var (
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("conflict")
	ErrDependencyConflict = errors.New("dependency conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

var (
	ErrUserNotFound         = newError(ErrNotFound, "user not found")
	ErrGroupNotFound        = newError(ErrNotFound, "group not found")
	ErrCategoryNotFound     = newError(ErrNotFound, "category not found")
	ErrActivityNotFound     = newError(ErrNotFound, "activity not found")
	ErrTaskListNotFound     = newError(ErrNotFound, "task list not found")
	ErrTaskNotFound         = newError(ErrNotFound, "task not found")
	ErrNoActiveTimer        = newError(ErrNotFound, "no active timer found")
	ErrRefreshTokenNotFound = newError(ErrNotFound, "refresh token not found")

	ErrInvalidTimeRange        = newError(ErrBadRequest, "end time must be after start time")
	ErrMissingRecurrenceRule   = newError(ErrBadRequest, "task has no recurrence rule")
	ErrInvalidRecurrenceRule   = newError(ErrBadRequest, "invalid recurrence rule")
	ErrInvalidOccurrenceCount  = newError(ErrBadRequest, "occurrence count must be between 1 and 52")
	ErrTrackerCategoryRequired = newError(ErrBadRequest, "a category is required to add this task to tracker")
	ErrTrackerScheduleRequired = newError(ErrBadRequest, "date, start time and end time are required to add task to tracker")

	ErrTimerAlreadyRunning = newError(ErrConflict, "timer already running")

	ErrGroupHasActivities    = newError(ErrDependencyConflict, "group categories still have activities")
	ErrCategoryHasActivities = newError(ErrDependencyConflict, "category still has activities")
	ErrDependencyViolation   = newError(ErrDependencyConflict, "resource is referenced by other records")

	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")
	ErrInvalidToken       = newError(ErrUnauthorized, "invalid or expired token")
	ErrInactiveUser       = newError(ErrUnauthorized, "user is inactive")
	ErrSuperuserRequired  = newError(ErrForbidden, "superuser privileges required")
)
