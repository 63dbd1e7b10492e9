package domain

import "time"

// TaskSummary aggregates a user's task counts for a reporting period.
//
// The counts are computed over the user's entire task set; only the overdue
// count consults the current instant. The requested period is echoed back
// but does not bound the counts, mirroring the summary contract callers
// already depend on.
type TaskSummary struct {
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	PendingTasks   int    `json:"pendingTasks"`
	OverdueTasks   int    `json:"overdueTasks"`
	CompletionRate int    `json:"completionRate"`
	Period         string `json:"period"`
}

// PriorityBreakdown holds per-priority task counts. Buckets absent from the
// data stay zero.
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CategoryStat reports total and completed counts for one category group.
type CategoryStat struct {
	Category  string `json:"category"`
	Count     int    `json:"count"`
	Completed int    `json:"completed"`
}

// TaskStatistics extends the summary counts with derived metrics.
type TaskStatistics struct {
	TotalTasks            int               `json:"totalTasks"`
	CompletedTasks        int               `json:"completedTasks"`
	PendingTasks          int               `json:"pendingTasks"`
	OverdueTasks          int               `json:"overdueTasks"`
	CompletionRate        int               `json:"completionRate"`
	AverageCompletionTime float64           `json:"averageCompletionTime"`
	ProductivityScore     int               `json:"productivityScore"`
	TasksByPriority       PriorityBreakdown `json:"tasksByPriority"`
	TasksByCategory       []CategoryStat    `json:"tasksByCategory"`
}

// TaskBrief is the compact task projection used in digest payloads.
type TaskBrief struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     time.Time  `json:"due_date"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TaskDigest groups the tasks surfaced in a daily or weekly summary:
// overdue pending tasks, pending tasks due within the next three days, and
// tasks completed inside the resolved window.
type TaskDigest struct {
	Overdue   []TaskBrief `json:"overdue"`
	Upcoming  []TaskBrief `json:"upcoming"`
	Completed []TaskBrief `json:"completed"`
}
