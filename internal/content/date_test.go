package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDate_YAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "calendar day", input: `date: "2024-01-15"`, want: "2024-01-15"},
		{name: "RFC3339 timestamp", input: `date: "2024-01-15T10:30:00Z"`, want: "2024-01-15"},
		{name: "invalid", input: `date: "15/01/2024"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Date Date `yaml:"date"`
			}
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Date.String())

			out, err := yaml.Marshal(got)
			require.NoError(t, err)
			assert.Contains(t, string(out), tt.want)
		})
	}
}

func TestDate_SameDay(t *testing.T) {
	day := MustParseDate("2024-01-15")

	assert.True(t, day.SameDay(NewDateFromTime(time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC))))
	assert.False(t, day.SameDay(MustParseDate("2024-01-16")))
	assert.False(t, day.SameDay(MustParseDate("2023-01-15")))

	ist := time.FixedZone("IST", 5*60*60+30*60)
	assert.True(t, MustParseDate("2024-01-16").SameDay(NewDateFromTime(time.Date(2024, 1, 16, 2, 0, 0, 0, ist))))
	assert.False(t, day.SameDay(NewDateFromTime(time.Date(2024, 1, 16, 2, 0, 0, 0, ist))))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseDate("2024-13-01") })
}
