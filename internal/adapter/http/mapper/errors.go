package mapper

import (
	"errors"
	"net/http"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/pkg/apierrors"
)

type errorMapping struct {
	err    error
	msgKey string
}

// Specific domain errors with their own translation; anything else falls
// back on its kind.
var errorMessages = []errorMapping{
	{domain.ErrGroupNotFound, apierrors.MsgGroupNotFound},
	{domain.ErrCategoryNotFound, apierrors.MsgCategoryNotFound},
	{domain.ErrActivityNotFound, apierrors.MsgActivityNotFound},
	{domain.ErrTaskListNotFound, apierrors.MsgTaskListNotFound},
	{domain.ErrTaskNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrNoActiveTimer, apierrors.MsgNoActiveTimer},
	{domain.ErrUserNotFound, apierrors.MsgUserNotFound},
	{domain.ErrInvalidTimeRange, apierrors.MsgInvalidTimeRange},
	{domain.ErrMissingRecurrenceRule, apierrors.MsgMissingRecurrenceRule},
	{domain.ErrInvalidRecurrenceRule, apierrors.MsgInvalidRecurrenceRule},
	{domain.ErrInvalidOccurrenceCount, apierrors.MsgInvalidOccurrenceCount},
	{domain.ErrTrackerCategoryRequired, apierrors.MsgTrackerCategoryRequired},
	{domain.ErrTrackerScheduleRequired, apierrors.MsgTrackerScheduleRequired},
	{domain.ErrTimerAlreadyRunning, apierrors.MsgTimerAlreadyRunning},
	{domain.ErrGroupHasActivities, apierrors.MsgGroupHasActivities},
	{domain.ErrCategoryHasActivities, apierrors.MsgCategoryHasActivities},
	{domain.ErrInvalidCredentials, apierrors.MsgInvalidCredentials},
	{domain.ErrInvalidToken, apierrors.MsgInvalidToken},
	{domain.ErrInactiveUser, apierrors.MsgInactiveUser},
	{domain.ErrSuperuserRequired, apierrors.MsgSuperuserRequired},
}

type kindMapping struct {
	kind   error
	status int
	reason string
	msgKey string
}

var errorKinds = []kindMapping{
	{domain.ErrNotFound, http.StatusNotFound, apierrors.ReasonNotFound, apierrors.MsgResourceMissing},
	{domain.ErrBadRequest, http.StatusBadRequest, apierrors.ReasonBadRequest, apierrors.MsgInvalidPayload},
	{domain.ErrConflict, http.StatusConflict, apierrors.ReasonConflict, apierrors.MsgInternalError},
	{domain.ErrDependencyConflict, http.StatusConflict, apierrors.ReasonDependencyConflict, apierrors.MsgDependencyConflict},
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.ReasonUnauthorized, apierrors.MsgInvalidToken},
	{domain.ErrForbidden, http.StatusForbidden, apierrors.ReasonForbidden, apierrors.MsgSuperuserRequired},
}

// ToAPIError translates err into an HTTP status and error body. The boolean
// is false for errors the domain does not know, which callers should log.
func ToAPIError(err error, lang string) (int, apierrors.JsonErr, bool) {
	for _, k := range errorKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		msgKey := k.msgKey
		for _, m := range errorMessages {
			if errors.Is(err, m.err) {
				msgKey = m.msgKey
				break
			}
		}
		return k.status, apierrors.CreateError(k.status, k.reason, msgKey, lang), true
	}
	return http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.ReasonInternal, apierrors.MsgInternalError, lang),
		false
}
