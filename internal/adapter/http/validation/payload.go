package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

// DecodeJSON unmarshals body into req, runs the binding tags and returns the
// raw field map. The map tells an explicit null apart from an absent field,
// which the patch builders rely on.
func DecodeJSON(body []byte, req any) (map[string]json.RawMessage, error) {
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if err := json.Unmarshal(body, req); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return raw, nil
}

func ParseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return id, nil
}

func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return d, nil
}

func ParseTime(value string) (domain.TimeOfDay, error) {
	t, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return t, nil
}

func parseOptionalID(value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := ParseID(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	d, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseOptionalTime(value *string) (*domain.TimeOfDay, error) {
	if value == nil {
		return nil, nil
	}
	t, err := ParseTime(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func requiredName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", ErrInvalidPayload
	}
	return name, nil
}

func optionalName(raw map[string]json.RawMessage, field string, value *string) (*string, error) {
	if hasJSONField(raw, field) && value == nil {
		return nil, ErrInvalidPayload
	}
	if value == nil {
		return nil, nil
	}
	name, err := requiredName(*value)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

// rejectNull fails when a non-nullable field was sent as null.
func rejectNull(raw map[string]json.RawMessage, fields ...string) error {
	for _, field := range fields {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return ErrInvalidPayload
		}
	}
	return nil
}

func hasAnyField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
