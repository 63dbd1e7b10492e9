package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// RawFilter holds filter fields exactly as the transport layer received
// them, before any validation.
type RawFilter struct {
	Status       string
	CategoryID   string
	Labels       []string
	DueDateStart string
	DueDateEnd   string
}

// BuildFilter normalizes a raw filter into the predicate set the store
// accepts. The policy is fail-open: an unknown status, a malformed category
// id, or an unparseable date range is dropped from the filter rather than
// rejecting the request, and a labels filter left empty after pruning
// invalid ids means "no label filter". Only the owner predicate is
// guaranteed to survive.
func BuildFilter(userID string, raw RawFilter) repository.TaskFilter {
	filter := repository.TaskFilter{UserID: userID}

	if status, ok := domain.ParseStatus(raw.Status); ok {
		filter.Status = status
	}

	if raw.CategoryID != "" {
		if _, err := uuid.Parse(raw.CategoryID); err == nil {
			filter.CategoryID = raw.CategoryID
		}
	}

	var labelIDs []string
	for _, id := range raw.Labels {
		if _, err := uuid.Parse(id); err == nil {
			labelIDs = append(labelIDs, id)
		}
	}
	if len(labelIDs) > 0 {
		filter.LabelIDs = labelIDs
	}

	// The range applies only when both ends parse; a half-open or malformed
	// range leaves due dates unfiltered.
	if raw.DueDateStart != "" && raw.DueDateEnd != "" {
		start, startErr := parseDate(raw.DueDateStart)
		end, endErr := parseDate(raw.DueDateEnd)
		if startErr == nil && endErr == nil {
			filter.DueFrom = &start
			filter.DueTo = &end
		}
	}

	return filter
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
