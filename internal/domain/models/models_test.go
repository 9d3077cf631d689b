package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPITimeDecoding(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{
			name:     "rfc3339",
			raw:      `"2025-03-01T10:20:30Z"`,
			expected: time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "naive backend timestamp",
			raw:      `"2025-03-01T10:20:30.123456"`,
			expected: time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC),
		},
		{
			name:     "null",
			raw:      `null`,
			expected: time.Time{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ts APITime
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ts))
			assert.True(t, tc.expected.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestAPITimeDecodingRejectsGarbage(t *testing.T) {
	var ts APITime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestLinkTargetHandlesBothFieldNames(t *testing.T) {
	var modern Link
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"short_key":"abc","original_url":"http://a.com"}`), &modern))
	assert.Equal(t, "http://a.com", modern.Target())

	var deployed Link
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"short_key":"abc","full_url":"http://b.com"}`), &deployed))
	assert.Equal(t, "http://b.com", deployed.Target())

	deployed.Normalize()
	assert.Equal(t, "http://b.com", deployed.OriginalURL)
}
