package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date and time",
			date:  "2024-06-10",
			clock: "03:45",
			want:  time.Date(2024, 6, 10, 3, 45, 0, 0, time.UTC),
		},
		{
			name:  "missing time defaults to midnight",
			date:  "2024-06-10",
			clock: "",
			want:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "time with seconds",
			date:  "2024-06-10",
			clock: "03:45:30",
			want:  time.Date(2024, 6, 10, 3, 45, 30, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			date:  " 2024-06-10 ",
			clock: " 03:45 ",
			want:  time.Date(2024, 6, 10, 3, 45, 0, 0, time.UTC),
		},
		{
			name:    "empty date",
			date:    "",
			clock:   "03:45",
			wantErr: true,
		},
		{
			name:    "garbage date",
			date:    "June 10th",
			clock:   "03:45",
			wantErr: true,
		},
		{
			name:    "garbage time",
			date:    "2024-06-10",
			clock:   "3.45 am",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineDateTime(tt.date, tt.clock, time.UTC)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestCombineDateTime_Location(t *testing.T) {
	colombo, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)

	got, err := CombineDateTime("2024-06-10", "03:45", colombo)
	require.NoError(t, err)
	assert.Equal(t, colombo, got.Location())

	// Nil location falls back to UTC rather than panicking.
	got, err = CombineDateTime("2024-06-10", "03:45", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 6, 10, 17, 42, 13, 500, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Midnight(in))
}

func TestSegmentInstants(t *testing.T) {
	seg := FlightSegment{
		Origin:        "CMB",
		Destination:   "DXB",
		DepartureDate: "2024-06-10",
		DepartureTime: "03:45",
		ArrivalDate:   "2024-06-10",
		// Arrival time missing: defaults to midnight.
	}

	dep, err := seg.DepartureInstant(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 3, 45, 0, 0, time.UTC), dep)

	arr, err := seg.ArrivalInstant(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), arr)
}
