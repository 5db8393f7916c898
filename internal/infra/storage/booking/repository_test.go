package booking

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Запросы репозитория и схема миграции должны ссылаться на одни и те же
// колонки таблицы bookings (дата хранится в booking_date, не в date).
func TestRepositoryColumnsMatchMigration(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	ddl := string(raw)

	query, _, err := selectBookingColumns().ToSql()
	require.NoError(t, err)

	fromIdx := strings.Index(query, " FROM ")
	require.Positive(t, fromIdx)
	selected := strings.TrimPrefix(query[:fromIdx], "SELECT ")

	for _, col := range strings.Split(selected, ", ") {
		assert.Contains(t, ddl, col, "select column %q is not defined in 001_init.sql", col)
	}

	for _, col := range bookingInsertColumns {
		assert.Contains(t, ddl, col, "insert column %q is not defined in 001_init.sql", col)
	}

	// Индекс расписания клинера построен по той же колонке даты
	assert.Contains(t, ddl, "ON bookings (cleaner_id, booking_date)")
}
