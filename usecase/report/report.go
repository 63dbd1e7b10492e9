package report

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// upcomingHorizon bounds the "upcoming" digest bucket: pending tasks due
// within the next three days.
const upcomingHorizon = 3 * 24 * time.Hour

type UseCase struct {
	reports repository.ReportRepository
	logger  *zap.Logger
	clock   func() time.Time
}

func New(reports repository.ReportRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		reports: reports,
		logger:  logger,
		clock:   time.Now,
	}
}

// Summary returns the owner's task counts and completion rate for the
// requested period.
//
// The window is resolved and logged, but the counts are intentionally
// computed over the owner's entire task set: only the overdue count consults
// the current instant. Callers depend on the period-independent totals, so
// the window does not bound them.
func (uc *UseCase) Summary(ctx context.Context, userID string, rawPeriod string) (*domain.TaskSummary, error) {
	period, err := ParsePeriod(rawPeriod)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	window := resolveWindow(now, period)
	uc.logger.Debug("summary window resolved",
		zap.String("period", string(period)),
		zap.Time("start", window.Start),
		zap.Time("end", window.End))

	counts, err := uc.reports.TaskCounts(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &domain.TaskSummary{
		TotalTasks:     counts.Total,
		CompletedTasks: counts.Completed,
		PendingTasks:   counts.Pending,
		OverdueTasks:   counts.Overdue,
		CompletionRate: completionRate(counts.Completed, counts.Total),
		Period:         string(period),
	}, nil
}

// Statistics returns the owner's full statistics: base counts, priority and
// category breakdowns, average completion time, and the productivity score.
func (uc *UseCase) Statistics(ctx context.Context, userID string) (*domain.TaskStatistics, error) {
	now := uc.clock()

	counts, err := uc.reports.TaskCounts(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	priorities, err := uc.reports.PriorityCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.reports.CategoryCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	avgHours, err := uc.reports.AverageCompletionHours(ctx, userID)
	if err != nil {
		return nil, err
	}

	rate := completionRate(counts.Completed, counts.Total)

	return &domain.TaskStatistics{
		TotalTasks:            counts.Total,
		CompletedTasks:        counts.Completed,
		PendingTasks:          counts.Pending,
		OverdueTasks:          counts.Overdue,
		CompletionRate:        rate,
		AverageCompletionTime: math.Round(avgHours*100) / 100,
		ProductivityScore:     productivityScore(rate, counts.Completed, counts.Overdue),
		TasksByPriority:       priorityBreakdown(priorities),
		TasksByCategory:       categoryStats(categories),
	}, nil
}

// Digest collects the overdue, upcoming, and recently-completed tasks for a
// daily or weekly summary. Overdue and upcoming are evaluated against the
// current instant; only the completed bucket is bounded by the resolved
// window (by completion timestamp).
func (uc *UseCase) Digest(ctx context.Context, userID string, rawPeriod string) (*domain.TaskDigest, error) {
	period, err := ParseDigestPeriod(rawPeriod)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	window := resolveDigestWindow(now, period)

	overdue, err := uc.reports.OverdueTasks(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := uc.reports.UpcomingTasks(ctx, userID, now, now.Add(upcomingHorizon))
	if err != nil {
		return nil, err
	}
	completed, err := uc.reports.CompletedBetween(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return &domain.TaskDigest{
		Overdue:   overdue,
		Upcoming:  upcoming,
		Completed: completed,
	}, nil
}

// completionRate is the rounded percentage of completed tasks, guarded to 0
// when the owner has no tasks at all.
func completionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// productivityScore combines the completion rate with the completed-to-
// overdue ratio: min(round((rate/100) * (completed/(overdue+1)) * 50), 100).
// The +1 keeps the denominator positive when nothing is overdue, and the cap
// bounds the score to [0, 100]. The constants are kept exactly as callers
// know them.
func productivityScore(rate, completed, overdue int) int {
	score := int(math.Round(float64(rate) / 100 * (float64(completed) / float64(overdue+1)) * 50))
	if score > 100 {
		return 100
	}
	return score
}

// priorityBreakdown folds stored priority groups into the three canonical
// buckets, matching case-insensitively. Values outside the canonical set are
// dropped; untouched buckets stay zero.
func priorityBreakdown(counts []repository.PriorityCount) domain.PriorityBreakdown {
	var breakdown domain.PriorityBreakdown
	for _, pc := range counts {
		switch domain.Priority(pc.Priority).Bucket() {
		case "high":
			breakdown.High = pc.Count
		case "medium":
			breakdown.Medium = pc.Count
		case "low":
			breakdown.Low = pc.Count
		}
	}
	return breakdown
}

// categoryStats relabels the nameless group (tasks with an unset or deleted
// category) as "Uncategorized".
func categoryStats(counts []repository.CategoryCount) []domain.CategoryStat {
	stats := make([]domain.CategoryStat, 0, len(counts))
	for _, cc := range counts {
		name := "Uncategorized"
		if cc.Name != nil && *cc.Name != "" {
			name = *cc.Name
		}
		stats = append(stats, domain.CategoryStat{
			Category:  name,
			Count:     cc.Total,
			Completed: cc.Completed,
		})
	}
	return stats
}
