package settings_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hhmm string) time.Time {
	c := settings.MustClockTime(hhmm)
	return c.On(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
}

func TestParseClockTime(t *testing.T) {
	c, err := settings.ParseClockTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", c.String())

	for _, bad := range []string{"25:00", "9am", "", "12:60"} {
		_, err := settings.ParseClockTime(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestOperatingHours_IsOpen(t *testing.T) {
	day, err := settings.NewOperatingHours(settings.MustClockTime("11:00"), settings.MustClockTime("22:00"))
	require.NoError(t, err)

	night, err := settings.NewOperatingHours(settings.MustClockTime("18:00"), settings.MustClockTime("02:00"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		hours settings.OperatingHours
		now   string
		open  bool
	}{
		{"before open", day, "10:59", false},
		{"at open", day, "11:00", true},
		{"midday", day, "15:30", true},
		{"at last order", day, "22:00", true},
		{"after last order", day, "22:01", false},
		{"wrapping evening", night, "23:30", true},
		{"wrapping after midnight", night, "01:15", true},
		{"wrapping closed", night, "12:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, tt.hours.IsOpen(at(tt.now)))
		})
	}

	t.Run("rejects empty window", func(t *testing.T) {
		_, err := settings.NewOperatingHours(settings.MustClockTime("10:00"), settings.MustClockTime("10:00"))
		require.Error(t, err)
	})
}

func TestOperatingHours_NextOpen(t *testing.T) {
	hours, _ := settings.NewOperatingHours(settings.MustClockTime("11:00"), settings.MustClockTime("22:00"))

	assert.Equal(t, at("11:00"), hours.NextOpen(at("08:00")))
	assert.Equal(t, at("11:00").AddDate(0, 0, 1), hours.NextOpen(at("22:30")))

	t.Run("keeps the restaurant location", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*3600)
		now := time.Date(2026, 5, 10, 23, 0, 0, 0, loc)

		next := hours.NextOpen(now)

		assert.Equal(t, time.Date(2026, 5, 11, 11, 0, 0, 0, loc), next)
	})
}
