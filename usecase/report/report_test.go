package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type fakeReportRepo struct {
	counts     repository.TaskCounts
	priorities []repository.PriorityCount
	categories []repository.CategoryCount
	avgHours   float64

	overdue   []domain.TaskBrief
	upcoming  []domain.TaskBrief
	completed []domain.TaskBrief

	countsNow     time.Time
	upcomingFrom  time.Time
	upcomingTo    time.Time
	completedFrom time.Time
	completedTo   time.Time
}

func (f *fakeReportRepo) TaskCounts(_ context.Context, _ string, now time.Time) (repository.TaskCounts, error) {
	f.countsNow = now
	return f.counts, nil
}

func (f *fakeReportRepo) PriorityCounts(context.Context, string) ([]repository.PriorityCount, error) {
	return f.priorities, nil
}

func (f *fakeReportRepo) CategoryCounts(context.Context, string) ([]repository.CategoryCount, error) {
	return f.categories, nil
}

func (f *fakeReportRepo) AverageCompletionHours(context.Context, string) (float64, error) {
	return f.avgHours, nil
}

func (f *fakeReportRepo) OverdueTasks(_ context.Context, _ string, _ time.Time) ([]domain.TaskBrief, error) {
	return f.overdue, nil
}

func (f *fakeReportRepo) UpcomingTasks(_ context.Context, _ string, from, to time.Time) ([]domain.TaskBrief, error) {
	f.upcomingFrom, f.upcomingTo = from, to
	return f.upcoming, nil
}

func (f *fakeReportRepo) CompletedBetween(_ context.Context, _ string, from, to time.Time) ([]domain.TaskBrief, error) {
	f.completedFrom, f.completedTo = from, to
	return f.completed, nil
}

func newReportUseCase(repo *fakeReportRepo, now time.Time) *UseCase {
	uc := New(repo, nil)
	uc.clock = func() time.Time { return now }
	return uc
}

func TestSummaryComputesCompletionRate(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		counts: repository.TaskCounts{Total: 10, Completed: 4, Pending: 3, Overdue: 3},
	}
	uc := newReportUseCase(repo, now)

	summary, err := uc.Summary(context.Background(), "user-1", "week")
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalTasks)
	assert.Equal(t, 4, summary.CompletedTasks)
	assert.Equal(t, 3, summary.PendingTasks)
	assert.Equal(t, 3, summary.OverdueTasks)
	assert.Equal(t, 40, summary.CompletionRate)
	assert.Equal(t, "week", summary.Period)
	assert.Equal(t, now, repo.countsNow)
}

func TestSummaryRejectsUnknownPeriod(t *testing.T) {
	uc := newReportUseCase(&fakeReportRepo{}, time.Now())

	_, err := uc.Summary(context.Background(), "user-1", "fortnight")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSummaryCountsAreIdenticalAcrossPeriods(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		counts: repository.TaskCounts{Total: 7, Completed: 2, Pending: 4, Overdue: 1},
	}
	uc := newReportUseCase(repo, now)

	var rates []int
	for _, period := range []string{"day", "week", "month"} {
		summary, err := uc.Summary(context.Background(), "user-1", period)
		require.NoError(t, err)
		assert.Equal(t, 7, summary.TotalTasks, period)
		assert.Equal(t, 2, summary.CompletedTasks, period)
		rates = append(rates, summary.CompletionRate)
	}
	assert.Equal(t, []int{29, 29, 29}, rates)
}

func TestSummaryZeroTasks(t *testing.T) {
	uc := newReportUseCase(&fakeReportRepo{}, time.Now())

	summary, err := uc.Summary(context.Background(), "user-1", "day")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalTasks)
	assert.Zero(t, summary.CompletionRate)
}

func TestStatisticsDerivedFields(t *testing.T) {
	high := "Work"
	repo := &fakeReportRepo{
		counts: repository.TaskCounts{Total: 10, Completed: 4, Pending: 3, Overdue: 3},
		priorities: []repository.PriorityCount{
			{Priority: "High", Count: 5},
			{Priority: "medium", Count: 3},
			{Priority: "LOW", Count: 2},
			{Priority: "urgent", Count: 9},
		},
		categories: []repository.CategoryCount{
			{Name: &high, Total: 6, Completed: 2},
			{Name: nil, Total: 4, Completed: 2},
		},
		avgHours: 12.3456,
	}
	uc := newReportUseCase(repo, time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))

	stats, err := uc.Statistics(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 40, stats.CompletionRate)
	// round(0.40 * (4/(3+1)) * 50) = 20
	assert.Equal(t, 20, stats.ProductivityScore)
	assert.Equal(t, 12.35, stats.AverageCompletionTime)

	assert.Equal(t, domain.PriorityBreakdown{High: 5, Medium: 3, Low: 2}, stats.TasksByPriority)

	require.Len(t, stats.TasksByCategory, 2)
	assert.Equal(t, "Work", stats.TasksByCategory[0].Category)
	assert.Equal(t, "Uncategorized", stats.TasksByCategory[1].Category)
	assert.Equal(t, 4, stats.TasksByCategory[1].Count)
}

func TestStatisticsZeroTasks(t *testing.T) {
	uc := newReportUseCase(&fakeReportRepo{}, time.Now())

	stats, err := uc.Statistics(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Zero(t, stats.CompletionRate)
	assert.Zero(t, stats.ProductivityScore)
	assert.Zero(t, stats.AverageCompletionTime)
	assert.Equal(t, domain.PriorityBreakdown{}, stats.TasksByPriority)
	assert.Empty(t, stats.TasksByCategory)
}

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		name      string
		rate      int
		completed int
		overdue   int
		want      int
	}{
		{name: "baseline", rate: 40, completed: 4, overdue: 3, want: 20},
		{name: "nothing overdue", rate: 100, completed: 2, overdue: 0, want: 100},
		{name: "capped at 100", rate: 90, completed: 50, overdue: 1, want: 100},
		{name: "zero completed", rate: 0, completed: 0, overdue: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productivityScore(tt.rate, tt.completed, tt.overdue))
		})
	}
}

func TestDigestBuckets(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		overdue:   []domain.TaskBrief{{ID: "t1"}},
		upcoming:  []domain.TaskBrief{{ID: "t2"}, {ID: "t3"}},
		completed: []domain.TaskBrief{{ID: "t4"}},
	}
	uc := newReportUseCase(repo, now)

	digest, err := uc.Digest(context.Background(), "user-1", "weekly")
	require.NoError(t, err)

	assert.Len(t, digest.Overdue, 1)
	assert.Len(t, digest.Upcoming, 2)
	assert.Len(t, digest.Completed, 1)

	// Upcoming looks three days ahead regardless of digest period.
	assert.Equal(t, now, repo.upcomingFrom)
	assert.Equal(t, now.Add(72*time.Hour), repo.upcomingTo)

	// The completed bucket is bounded by the raw trailing week.
	assert.Equal(t, now.AddDate(0, 0, -7), repo.completedFrom)
	assert.Equal(t, now, repo.completedTo)
}

func TestDigestDailyWindow(t *testing.T) {
	now := time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{}
	uc := newReportUseCase(repo, now)

	_, err := uc.Digest(context.Background(), "user-1", "daily")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), repo.completedFrom)
}

func TestDigestRejectsUnknownPeriod(t *testing.T) {
	uc := newReportUseCase(&fakeReportRepo{}, time.Now())

	_, err := uc.Digest(context.Background(), "user-1", "hourly")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
