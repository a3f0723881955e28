package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)

func TestResolvePeriodToday(t *testing.T) {
	p := ResolvePeriod(PeriodToday, "", "", fixedNow)

	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestResolvePeriodLast7Days(t *testing.T) {
	p := ResolvePeriod(PeriodLast7Days, "", "", fixedNow)

	assert.Equal(t, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestResolvePeriodThisMonth(t *testing.T) {
	p := ResolvePeriod(PeriodThisMonth, "", "", fixedNow)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestResolvePeriodLastMonth(t *testing.T) {
	p := ResolvePeriod(PeriodLastMonth, "", "", fixedNow)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 10, 31, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestResolvePeriodLastMonthYearRollover(t *testing.T) {
	january := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	p := ResolvePeriod(PeriodLastMonth, "", "", january)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestResolvePeriodUnknownKeyFallsBackToLast30Days(t *testing.T) {
	p := ResolvePeriod("whatever", "", "", fixedNow)
	fallback := ResolvePeriod(PeriodLast30Days, "", "", fixedNow)

	assert.Equal(t, fallback.Start, p.Start)
	assert.Equal(t, fallback.End, p.End)
	assert.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), p.Start)
}

func TestResolvePeriodDeterministic(t *testing.T) {
	for _, key := range []string{PeriodToday, PeriodLast7Days, PeriodLast30Days, PeriodThisMonth, PeriodLastMonth} {
		first := ResolvePeriod(key, "", "", fixedNow)
		second := ResolvePeriod(key, "", "", fixedNow)
		assert.Equal(t, first, second, key)
		assert.False(t, first.Start.After(first.End), key)
	}
}

func TestResolvePeriodCustomBounds(t *testing.T) {
	p := ResolvePeriod(PeriodCustom, "2025-10-01", "2025-10-15", fixedNow)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), p.End)
	assert.True(t, p.Contains(time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)))
}

func TestResolvePeriodCustomDefaults(t *testing.T) {
	p := ResolvePeriod(PeriodCustom, "", "", fixedNow)

	require.Equal(t, time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), p.Start)
	require.Equal(t, time.Date(2025, 11, 10, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestResolvePeriodCustomBoundsTrustedAsIs(t *testing.T) {
	// start > end is not reordered; such a period matches nothing.
	p := ResolvePeriod(PeriodCustom, "2025-10-15", "2025-10-01", fixedNow)

	assert.True(t, p.Start.After(p.End))
	assert.False(t, p.Contains(time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)))
}

func TestResolvePeriodCustomInvalidInputDegradesSilently(t *testing.T) {
	p := ResolvePeriod(PeriodCustom, "not-a-date", "2025-10-15", fixedNow)

	// No error surfaces; the period simply contains nothing.
	assert.False(t, p.Contains(time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(fixedNow))
}

func TestPeriodContainsInclusiveBounds(t *testing.T) {
	p := ResolvePeriod(PeriodToday, "", "", fixedNow)

	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	assert.False(t, p.Contains(p.Start.Add(-time.Millisecond)))
	assert.False(t, p.Contains(p.End.Add(time.Millisecond)))
}
