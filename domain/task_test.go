package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityBucket(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "High", want: "high"},
		{raw: "HIGH", want: "high"},
		{raw: "medium", want: "medium"},
		{raw: "Low", want: "low"},
		{raw: "urgent", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Priority(tt.raw).Bucket(), tt.raw)
	}
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("Pending")
	assert.True(t, ok)
	assert.Equal(t, StatusPending, status)

	_, ok = ParseStatus("pending")
	assert.False(t, ok)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	overdue := &Task{Status: StatusPending, DueDate: now.Add(-time.Hour)}
	assert.True(t, overdue.IsOverdue(now))

	// Completed tasks are never overdue, regardless of due date.
	done := &Task{Status: StatusCompleted, DueDate: now.Add(-time.Hour)}
	assert.False(t, done.IsOverdue(now))

	future := &Task{Status: StatusPending, DueDate: now.Add(time.Hour)}
	assert.False(t, future.IsOverdue(now))

	var nilTask *Task
	assert.False(t, nilTask.IsOverdue(now))
}
