package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func date(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := date(*t)
	return &value
}

func timeOfDayPtr(t *domain.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	value := t.String()
	return &value
}

func uuidPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	value := id.String()
	return &value
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
