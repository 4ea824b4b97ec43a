package validation

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Chikimuras/ezlife/internal/adapter/http/dto"
	"github.com/Chikimuras/ezlife/internal/core/domain"
)

func BuildActivity(userID uuid.UUID, req dto.CreateActivityRequest) (domain.Activity, error) {
	categoryID, err := ParseID(req.CategoryID)
	if err != nil {
		return domain.Activity{}, err
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return domain.Activity{}, err
	}
	start, err := ParseTime(req.StartTime)
	if err != nil {
		return domain.Activity{}, err
	}
	end, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return domain.Activity{}, err
	}
	return domain.Activity{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Notes:      req.Notes,
	}, nil
}

func BuildActivityPatch(req dto.UpdateActivityRequest, raw map[string]json.RawMessage) (domain.ActivityPatch, error) {
	if !hasAnyField(raw, "categoryId", "date", "startTime", "endTime", "notes") {
		return domain.ActivityPatch{}, ErrInvalidPayload
	}
	if err := rejectNull(raw, "categoryId", "date", "startTime"); err != nil {
		return domain.ActivityPatch{}, err
	}
	categoryID, err := parseOptionalID(req.CategoryID)
	if err != nil {
		return domain.ActivityPatch{}, err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return domain.ActivityPatch{}, err
	}
	start, err := parseOptionalTime(req.StartTime)
	if err != nil {
		return domain.ActivityPatch{}, err
	}
	end, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return domain.ActivityPatch{}, err
	}
	return domain.ActivityPatch{
		CategoryID: categoryID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		EndTimeSet: hasJSONField(raw, "endTime"),
		Notes:      req.Notes,
		NotesSet:   hasJSONField(raw, "notes"),
	}, nil
}
