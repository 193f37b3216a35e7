package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStamps(t *testing.T) {
	cases := []struct {
		now            time.Time
		expectDate     string
		expectMinute   string
		expectUpstream string
	}{
		{
			now:            time.Date(2024, time.September, 3, 14, 5, 30, 0, Location),
			expectDate:     "2024-09-03",
			expectMinute:   "2024-09-03 14:05",
			expectUpstream: "9/3/2024",
		},
		{
			now:            time.Date(2024, time.December, 25, 0, 0, 0, 0, Location),
			expectDate:     "2024-12-25",
			expectMinute:   "2024-12-25 00:00",
			expectUpstream: "12/25/2024",
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expectDate, DateStamp(test.now))
		require.Equal(t, test.expectMinute, MinuteStamp(test.now))
		require.Equal(t, test.expectUpstream, UpstreamDate(test.now))
	}
}

func TestStampConvertsToCampusTime(t *testing.T) {
	east, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// 1am eastern is still the previous day on campus
	now := time.Date(2024, time.September, 3, 1, 0, 0, 0, east)
	require.Equal(t, "2024-09-02", DateStamp(now))
}
