package awsjson

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampEpochSeconds(t *testing.T) {
	ts := NewTimestamp(time.Date(2020, 1, 9, 16, 0, 0, 250*int(time.Millisecond), time.UTC))
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1578585600.25", string(data))

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(ts.Time))
}

func TestTimestampAcceptsIntegersAndStrings(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte("1578585600"), &ts))
	assert.Equal(t, int64(1578585600), ts.Unix())

	require.NoError(t, json.Unmarshal([]byte(`"2020-01-09T16:00:00Z"`), &ts))
	assert.Equal(t, int64(1578585600), ts.Unix())

	require.NoError(t, json.Unmarshal([]byte("null"), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestTimestampOmittedWhenNil(t *testing.T) {
	type window struct {
		Start *Timestamp `json:"start,omitempty"`
	}
	data, err := json.Marshal(window{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
