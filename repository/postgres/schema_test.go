package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repositories and the initial migration must agree on column names and
// nullability; a drift here fails at plan time on a fresh database, so the
// schema is pinned against the columns the queries reference.

func loadInitMigration(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("../../assets/migrations/0001_init.up.sql")
	require.NoError(t, err)
	return string(data)
}

func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	pattern := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\);`)
	match := pattern.FindStringSubmatch(schema)
	require.NotNil(t, match, "missing CREATE TABLE for %s", table)
	return match[1]
}

func TestInitMigrationDeclaresQueriedColumns(t *testing.T) {
	schema := loadInitMigration(t)

	tests := []struct {
		table   string
		columns []string
	}{
		{table: "users", columns: []string{"id", "name", "email", "status", "created_at", "updated_at"}},
		{table: "categories", columns: []string{"id", "user_id", "name", "description", "created_at", "updated_at"}},
		{table: "labels", columns: []string{"id", "user_id", "name", "created_at", "updated_at"}},
		{table: "tasks", columns: []string{
			"id", "user_id", "title", "description", "priority", "due_date",
			"category_id", "status", "position", "created_at", "updated_at",
		}},
		{table: "task_labels", columns: []string{"task_id", "label_id"}},
		{table: "reminders", columns: []string{
			"id", "user_id", "task_id", "remind_at", "reminder_type",
			"repeat_interval", "is_active", "created_at", "updated_at",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			ddl := tableDDL(t, schema, tt.table)
			for _, column := range tt.columns {
				assert.Regexp(t, `(?m)^\s*`+column+`\s`, ddl, "column %s", column)
			}
		})
	}
}

func TestInitMigrationTaskDefaults(t *testing.T) {
	ddl := tableDDL(t, loadInitMigration(t), "tasks")

	// Defaults must use the canonical casing the count filters match on.
	assert.Contains(t, ddl, "DEFAULT 'Pending'")
	assert.Contains(t, ddl, "DEFAULT 'Medium'")
	assert.NotContains(t, ddl, "'pending'")
	assert.NotContains(t, ddl, "'medium'")

	// Due date is required and scanned into a non-pointer field.
	assert.Regexp(t, `(?m)^\s*due_date\s+TIMESTAMPTZ NOT NULL`, ddl)
}

func TestInitMigrationKeepsReferencesUnconstrained(t *testing.T) {
	schema := loadInitMigration(t)

	tasks := tableDDL(t, schema, "tasks")
	assert.NotRegexp(t, `(?m)^\s*category_id\s+UUID.*REFERENCES`, tasks)

	taskLabels := tableDDL(t, schema, "task_labels")
	assert.NotRegexp(t, `(?m)^\s*label_id\s+UUID.*REFERENCES`, taskLabels)

	// Active-reminder uniqueness is checked at write time, not enforced.
	reminders := tableDDL(t, schema, "reminders")
	assert.NotContains(t, reminders, "UNIQUE")
	assert.NotContains(t, schema, "UNIQUE INDEX idx_reminders_active_task")
	assert.Contains(t, schema, "ON reminders (user_id, task_id) WHERE is_active")
}
