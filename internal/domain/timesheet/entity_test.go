package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeTotalHours(t *testing.T) {
	entries := []Entry{
		{Hours: decimal.RequireFromString("8")},
		{Hours: decimal.RequireFromString("7.5")},
		{Hours: decimal.RequireFromString("4.25")},
	}
	assert.Equal(t, "19.75", ComputeTotalHours(entries).StringFixed(2))
	assert.True(t, ComputeTotalHours(nil).IsZero())
}

func TestEntriesWithinPeriod(t *testing.T) {
	start := day("2025-03-01")
	end := day("2025-03-31")

	inside := []Entry{
		{WorkDate: day("2025-03-01")},
		{WorkDate: day("2025-03-15")},
		{WorkDate: day("2025-03-31")},
	}
	assert.True(t, EntriesWithinPeriod(inside, start, end))

	before := []Entry{{WorkDate: day("2025-02-28")}}
	assert.False(t, EntriesWithinPeriod(before, start, end))

	after := []Entry{{WorkDate: day("2025-04-01")}}
	assert.False(t, EntriesWithinPeriod(after, start, end))
}
