package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

func TestBuildFilterKeepsOwner(t *testing.T) {
	filter := BuildFilter("user-1", RawFilter{})
	assert.Equal(t, "user-1", filter.UserID)
	assert.Empty(t, filter.Status)
	assert.Empty(t, filter.CategoryID)
	assert.Nil(t, filter.LabelIDs)
	assert.Nil(t, filter.DueFrom)
	assert.Nil(t, filter.DueTo)
}

func TestBuildFilterStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Status
	}{
		{name: "pending accepted", raw: "Pending", want: domain.StatusPending},
		{name: "completed accepted", raw: "Completed", want: domain.StatusCompleted},
		{name: "unknown dropped", raw: "Archived", want: ""},
		{name: "wrong case dropped", raw: "pending", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := BuildFilter("user-1", RawFilter{Status: tt.raw})
			assert.Equal(t, tt.want, filter.Status)
		})
	}
}

func TestBuildFilterCategory(t *testing.T) {
	valid := "7d4df0ae-69f7-4cf3-9b2b-9cdbbb2a9f11"

	filter := BuildFilter("user-1", RawFilter{CategoryID: valid})
	assert.Equal(t, valid, filter.CategoryID)

	filter = BuildFilter("user-1", RawFilter{CategoryID: "not-a-uuid"})
	assert.Empty(t, filter.CategoryID)
}

func TestBuildFilterLabelsPrunesInvalid(t *testing.T) {
	valid := "0b6a9f3e-8fc6-4f4e-b6d8-0a4c5b7c9d21"

	filter := BuildFilter("user-1", RawFilter{Labels: []string{"junk", valid, ""}})
	assert.Equal(t, []string{valid}, filter.LabelIDs)

	// Everything pruned means no label predicate at all.
	filter = BuildFilter("user-1", RawFilter{Labels: []string{"junk", "more junk"}})
	assert.Nil(t, filter.LabelIDs)
}

func TestBuildFilterDueDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		applied bool
	}{
		{name: "both date-only", start: "2026-01-01", end: "2026-01-31", applied: true},
		{name: "both rfc3339", start: "2026-01-01T00:00:00Z", end: "2026-01-31T23:00:00Z", applied: true},
		{name: "start only", start: "2026-01-01", end: "", applied: false},
		{name: "end only", start: "", end: "2026-01-31", applied: false},
		{name: "malformed start", start: "january", end: "2026-01-31", applied: false},
		{name: "malformed end", start: "2026-01-01", end: "soon", applied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := BuildFilter("user-1", RawFilter{DueDateStart: tt.start, DueDateEnd: tt.end})
			if !tt.applied {
				assert.Nil(t, filter.DueFrom)
				assert.Nil(t, filter.DueTo)
				return
			}
			require.NotNil(t, filter.DueFrom)
			require.NotNil(t, filter.DueTo)
			assert.True(t, filter.DueFrom.Before(*filter.DueTo))
		})
	}
}

func TestBuildFilterCombined(t *testing.T) {
	category := "7d4df0ae-69f7-4cf3-9b2b-9cdbbb2a9f11"
	label := "0b6a9f3e-8fc6-4f4e-b6d8-0a4c5b7c9d21"

	filter := BuildFilter("user-9", RawFilter{
		Status:       "Completed",
		CategoryID:   category,
		Labels:       []string{label},
		DueDateStart: "2026-03-01",
		DueDateEnd:   "2026-03-31",
	})

	assert.Equal(t, repository.TaskFilter{
		UserID:     "user-9",
		Status:     domain.StatusCompleted,
		CategoryID: category,
		LabelIDs:   []string{label},
		DueFrom:    filter.DueFrom,
		DueTo:      filter.DueTo,
	}, filter)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), filter.DueFrom.UTC())
}
