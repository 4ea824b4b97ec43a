package apierrors

// Machine-readable reasons, stable across languages.
const (
	ReasonNotFound           = "RESOURCE_001"
	ReasonBadRequest         = "CLIENT_001"
	ReasonConflict           = "CONFLICT_003"
	ReasonDependencyConflict = "CONFLICT_004"
	ReasonUnauthorized       = "AUTH_001"
	ReasonForbidden          = "AUTH_002"
	ReasonInternal           = "SERVER_001"
)

// Translation message ids.
const (
	MsgInternalError   = "internalError"
	MsgInvalidPayload  = "invalidPayload"
	MsgInvalidID       = "invalidID"
	MsgInvalidDate     = "invalidDate"
	MsgResourceMissing = "resourceNotFound"

	MsgGroupNotFound    = "groupNotFound"
	MsgCategoryNotFound = "categoryNotFound"
	MsgActivityNotFound = "activityNotFound"
	MsgTaskListNotFound = "taskListNotFound"
	MsgTaskNotFound     = "taskNotFound"
	MsgNoActiveTimer    = "noActiveTimer"
	MsgUserNotFound     = "userNotFound"

	MsgInvalidTimeRange        = "invalidTimeRange"
	MsgMissingRecurrenceRule   = "missingRecurrenceRule"
	MsgInvalidRecurrenceRule   = "invalidRecurrenceRule"
	MsgInvalidOccurrenceCount  = "invalidOccurrenceCount"
	MsgTrackerCategoryRequired = "trackerCategoryRequired"
	MsgTrackerScheduleRequired = "trackerScheduleRequired"

	MsgTimerAlreadyRunning = "timerAlreadyRunning"

	MsgGroupHasActivities    = "groupHasActivities"
	MsgCategoryHasActivities = "categoryHasActivities"
	MsgDependencyConflict    = "dependencyConflict"

	MsgMissingToken       = "missingToken"
	MsgInvalidToken       = "invalidToken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInactiveUser       = "inactiveUser"
	MsgSuperuserRequired  = "superuserRequired"
)
