package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWorkingDay(t *testing.T) {
	// 2025-10-17 - пятница
	friday := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsWorkingDay(friday))

	for d := 1; d <= 6; d++ {
		day := friday.AddDate(0, 0, d)
		assert.True(t, IsWorkingDay(day), "weekday %s must be working", day.Weekday())
	}
}

func TestIsValidStartTime(t *testing.T) {
	assert.True(t, IsValidStartTime("08:00"))
	assert.True(t, IsValidStartTime("12:30"))
	assert.False(t, IsValidStartTime("07:59"))
	assert.False(t, IsValidStartTime("06:00"))
}

func TestIsValidEndTime(t *testing.T) {
	assert.True(t, IsValidEndTime("22:00"))
	assert.True(t, IsValidEndTime("12:00"))
	assert.False(t, IsValidEndTime("22:01"))
	assert.False(t, IsValidEndTime("23:00"))
}

func TestIsValidDuration(t *testing.T) {
	assert.True(t, IsValidDuration(120))
	assert.True(t, IsValidDuration(240))
	assert.False(t, IsValidDuration(0))
	assert.False(t, IsValidDuration(60))
	assert.False(t, IsValidDuration(180))
	assert.False(t, IsValidDuration(360))
}
