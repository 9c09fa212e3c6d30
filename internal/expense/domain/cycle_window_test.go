package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleWindowForAnchorDay(t *testing.T) {
	window := CycleWindowFor(day(2025, time.March, 20), 16)
	assert.Equal(t, day(2025, time.March, 16), window.Start)
	assert.Equal(t, day(2025, time.April, 16), window.End)

	// A date before the anchor day belongs to the previous month's cycle.
	window = CycleWindowFor(day(2025, time.March, 10), 16)
	assert.Equal(t, day(2025, time.February, 16), window.Start)
	assert.Equal(t, day(2025, time.March, 16), window.End)
}

func TestCycleWindowForDefaultAnchor(t *testing.T) {
	window := CycleWindowFor(day(2025, time.March, 14), 1)
	assert.Equal(t, day(2025, time.March, 1), window.Start)
	assert.Equal(t, day(2025, time.April, 1), window.End)

	// Anchor days below one are treated as the first of the month.
	window = CycleWindowFor(day(2025, time.March, 14), 0)
	assert.Equal(t, day(2025, time.March, 1), window.Start)
}

func TestCycleWindowForYearRollover(t *testing.T) {
	window := CycleWindowFor(day(2025, time.December, 20), 1)
	assert.Equal(t, day(2025, time.December, 1), window.Start)
	assert.Equal(t, day(2026, time.January, 1), window.End)

	window = CycleWindowFor(day(2026, time.January, 5), 16)
	assert.Equal(t, day(2025, time.December, 16), window.Start)
	assert.Equal(t, day(2026, time.January, 16), window.End)
}

func TestCycleWindowContains(t *testing.T) {
	window := CycleWindow{Start: day(2025, time.March, 1), End: day(2025, time.April, 1)}

	assert.True(t, window.Contains(day(2025, time.March, 1)))
	assert.True(t, window.Contains(day(2025, time.March, 31)))
	assert.False(t, window.Contains(day(2025, time.April, 1)))
	assert.False(t, window.Contains(day(2025, time.February, 28)))
}

func TestDisplayNumber(t *testing.T) {
	short := Receipt{ReceiptNumber: "INV-001"}
	assert.Equal(t, "INV-001", short.DisplayNumber())

	long := Receipt{ReceiptNumber: "00200100225680226031068"}
	assert.Equal(t, "5680226031068", long.DisplayNumber())
	assert.Len(t, long.DisplayNumber(), 13)
}
