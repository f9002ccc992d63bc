package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCanonicalInstantRoundTrip(t *testing.T) {
	inputs := []string{
		"2025-03-10T09:30",
		"2024-01-01T00:00",
		"2024-12-31T23:59",
	}

	for _, s := range inputs {
		canonical := ToCanonicalInstant(s)
		require.NotEmpty(t, canonical, "input %q", s)
		assert.Equal(t, s, FromCanonicalInstant(canonical), "round trip for %q", s)
	}
}

func TestToCanonicalInstantProducesUTC(t *testing.T) {
	canonical := ToCanonicalInstant("2025-06-15T12:00")
	require.NotEmpty(t, canonical)

	parsed, err := time.Parse(time.RFC3339, canonical)
	require.NoError(t, err)

	local, err := time.ParseInLocation("2006-01-02T15:04", "2025-06-15T12:00", time.Local)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(local))
	_, offset := parsed.Zone()
	assert.Equal(t, 0, offset)
}

func TestToCanonicalInstantInvalid(t *testing.T) {
	assert.Empty(t, ToCanonicalInstant(""))
	assert.Empty(t, ToCanonicalInstant("not-a-date"))
	assert.Empty(t, ToCanonicalInstant("2025-13-40T99:99"))
}

func TestFromCanonicalInstantInvalid(t *testing.T) {
	assert.Empty(t, FromCanonicalInstant(""))
	assert.Empty(t, FromCanonicalInstant("not-a-date"))
}

func TestFormatForDisplay(t *testing.T) {
	assert.Equal(t, NotScheduled, FormatForDisplay("", "America/New_York"))
	assert.Equal(t, InvalidDate, FormatForDisplay("not-a-date", "America/New_York"))

	// 2025-01-25T21:00Z is 4 PM in New York.
	assert.Equal(t, "Jan 25, 2025, 09:00 PM", FormatForDisplay("2025-01-25T21:00:00Z", "UTC"))
	assert.Equal(t, "Jan 25, 2025, 04:00 PM", FormatForDisplay("2025-01-25T21:00:00Z", "America/New_York"))
}

func TestFormatForDisplayUnknownTimezoneFallsBackToUTC(t *testing.T) {
	assert.Equal(t, "Jan 25, 2025, 09:00 PM", FormatForDisplay("2025-01-25T21:00:00Z", "Not/AZone"))
}

func TestCurrentLocalInputString(t *testing.T) {
	s := CurrentLocalInputString()
	parsed, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Minute)
}
