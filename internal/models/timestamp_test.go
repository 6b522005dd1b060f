package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_DecodesAPIFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "rfc3339", raw: `"2024-01-15T10:30:00Z"`, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "offset and fraction", raw: `"2024-01-15T10:30:00.123+05:00"`, want: time.Date(2024, 1, 15, 5, 30, 0, 123000000, time.UTC)},
		{name: "no zone", raw: `"2024-01-15T10:30:00"`, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "space separated", raw: `"2024-01-15 10:30:00"`, want: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "date only", raw: `"2024-01-15"`, want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_UnknownFormatKeepsIncident(t *testing.T) {
	var incident Incident
	err := json.Unmarshal([]byte(`{"id":1,"incident_time":"15/01/2024","incident_status":"Active"}`), &incident)

	require.NoError(t, err)
	assert.Equal(t, 1, incident.ID)
	assert.True(t, incident.IncidentTime.IsZero())
}

func TestTimestamp_NullAndMarshal(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	ts = Timestamp{Time: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
	raw, err = json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T10:30:00Z"`, string(raw))
}
