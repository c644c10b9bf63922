package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{
			name:    "valid RFC3339",
			dateStr: "2026-05-19T08:00:00Z",
		},
		{
			name:    "valid RFC3339 with timezone",
			dateStr: "2026-05-19T08:00:00+05:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2026-05-19",
			wantYear:  2026,
			wantMonth: time.May,
			wantDay:   19,
		},
		{
			name:      "january date",
			dateStr:   "2026-01-01",
			wantYear:  2026,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		require.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("hello")
		require.NotNil(t, strVal)
		assert.Equal(t, "hello", *strVal)
	})

	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(3.14)
		require.NotNil(t, floatVal)
		assert.Equal(t, 3.14, *floatVal)
	})

	t.Run("bool value", func(t *testing.T) {
		boolVal := Ptr(true)
		require.NotNil(t, boolVal)
		assert.Equal(t, true, *boolVal)
	})
}

func TestBooking(t *testing.T) {
	b := Booking("bk-1", "XK4B2M")

	assert.Equal(t, "bk-1", b.ID)
	assert.Equal(t, "XK4B2M", b.PNR)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	require.Len(t, b.Passengers, 1)
	require.Len(t, b.Segments, 1)
	assert.Equal(t, "CMB", b.Segments[0].Origin)
	assert.Equal(t, 3500.0, b.Profit)
}
