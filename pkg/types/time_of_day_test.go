package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr error
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:00", want: 540},
		{name: "with minutes", input: "16:30", want: 990},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "end of day is not a start", input: "24:00", wantErr: ErrTimeOutOfRange},
		{name: "bad minutes", input: "10:60", wantErr: ErrTimeOutOfRange},
		{name: "bad hours", input: "25:00", wantErr: ErrTimeOutOfRange},
		{name: "not padded", input: "9:00", wantErr: ErrInvalidTimeFormat},
		{name: "letters", input: "ab:cd", wantErr: ErrInvalidTimeFormat},
		{name: "seconds", input: "10:00:00", wantErr: ErrInvalidTimeFormat},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntervalEnd_AllowsEndOfDay(t *testing.T) {
	got, err := ParseIntervalEnd("24:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(1440), got)

	_, err = ParseIntervalEnd("24:01")
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", NewTimeOfDay(9, 5).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "17:00", NewTimeOfDay(16, 30).Add(30).String())
}

func TestTimeOfDay_JSON(t *testing.T) {
	type payload struct {
		Start TimeOfDay `json:"start"`
	}

	data, err := json.Marshal(payload{Start: NewTimeOfDay(8, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:15"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"13:45"}`), &decoded))
	assert.Equal(t, NewTimeOfDay(13, 45), decoded.Start)

	err = json.Unmarshal([]byte(`{"start":"1:45"}`), &decoded)
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan([]byte("10:30")))
	assert.Equal(t, NewTimeOfDay(10, 30), tod)

	require.NoError(t, tod.Scan("07:00"))
	assert.Equal(t, NewTimeOfDay(7, 0), tod)

	require.Error(t, tod.Scan(42))

	value, err := NewTimeOfDay(11, 0).Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", value)
}
