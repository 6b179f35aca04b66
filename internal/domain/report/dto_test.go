package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRequest_Parse(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)

	t.Run("unknown type falls back to daily", func(t *testing.T) {
		q, err := SummaryRequest{ReportType: "whatever"}.Parse(loc)
		require.NoError(t, err)
		assert.Equal(t, TypeDaily, q.Type)
		assert.Equal(t, FormatJSON, q.Format)
		assert.Nil(t, q.Range.From)
		assert.Nil(t, q.Range.To)
	})

	t.Run("date-only end covers the whole day", func(t *testing.T) {
		q, err := SummaryRequest{ReportType: "Leave", StartDate: "2024-01-01", EndDate: "2024-01-31"}.Parse(loc)
		require.NoError(t, err)
		assert.Equal(t, TypeLeave, q.Type)
		require.NotNil(t, q.Range.From)
		require.NotNil(t, q.Range.To)
		assert.True(t, q.Range.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, loc)))
		assert.True(t, q.Range.To.Equal(time.Date(2024, 1, 31, 23, 59, 59, int(999*time.Millisecond), loc)))
	})

	t.Run("timestamps are kept as given", func(t *testing.T) {
		q, err := SummaryRequest{StartDate: "2024-01-01T00:00:00.000Z", EndDate: "2024-01-02T12:00:00Z"}.Parse(loc)
		require.NoError(t, err)
		assert.True(t, q.Range.To.Equal(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("single bound", func(t *testing.T) {
		q, err := SummaryRequest{StartDate: "2024-01-01"}.Parse(loc)
		require.NoError(t, err)
		assert.NotNil(t, q.Range.From)
		assert.Nil(t, q.Range.To)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := SummaryRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"}.Parse(loc)
		assert.Error(t, err)
	})

	t.Run("bad date and format", func(t *testing.T) {
		_, err := SummaryRequest{StartDate: "yesterday", Format: "pdf"}.Parse(loc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "startDate")
		assert.Contains(t, err.Error(), "format")
	})
}
