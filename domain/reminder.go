package domain

import "time"

// ReminderType enumerates the supported delivery channels.
type ReminderType string

const (
	ReminderNotification ReminderType = "notification"
	ReminderEmail        ReminderType = "email"
	ReminderBoth         ReminderType = "both"
)

// RepeatInterval enumerates reminder recurrence options.
type RepeatInterval string

const (
	RepeatNone    RepeatInterval = "none"
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
)

// Reminder schedules a notification for a task. At most one active reminder
// may exist per (user, task) pair; the use case checks this before insert,
// the store does not enforce it.
type Reminder struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	TaskID    string         `json:"task_id"`
	RemindAt  time.Time      `json:"remind_at"`
	Type      ReminderType   `json:"reminder_type"`
	Repeat    RepeatInterval `json:"repeat"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ReminderTask is the task projection joined into a reminder view.
type ReminderTask struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
}

// ReminderView is a reminder enriched with its task. Task is nil when the
// referenced task has been deleted.
type ReminderView struct {
	Reminder
	Task *ReminderTask `json:"task"`
}
