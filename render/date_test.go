package render

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var segments = regexp.MustCompile(`^<span class="day">([^<]+)</span> <span class="month">([^<]+)</span> <span class="date">([^<]+)</span> <span class="year">([^<]+)</span>$`)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "spec example",
			t:    time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local),
			want: `<span class="day">Tue</span> <span class="month">Mar</span> <span class="date">5</span> <span class="year">2024</span>`,
		},
		{
			name: "sunday in january",
			t:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			want: `<span class="day">Sun</span> <span class="month">Jan</span> <span class="date">1</span> <span class="year">2023</span>`,
		},
		{
			name: "saturday in december",
			t:    time.Date(2022, 12, 31, 23, 59, 59, 0, time.UTC),
			want: `<span class="day">Sat</span> <span class="month">Dec</span> <span class="date">31</span> <span class="year">2022</span>`,
		},
		{
			name: "zero time",
			t:    time.Time{},
			want: `<span class="day">Mon</span> <span class="month">Jan</span> <span class="date">1</span> <span class="year">1</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.t))
		})
	}
}

func TestFormatDate_UsesOwnLocation(t *testing.T) {
	// 23:00 UTC on Tuesday is already Wednesday in Nairobi
	nairobi := time.FixedZone("EAT", 3*60*60)
	utc := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)

	assert.Contains(t, FormatDate(utc), `<span class="day">Tue</span>`)
	assert.Contains(t, FormatDate(utc.In(nairobi)), `<span class="day">Wed</span>`)
	assert.Contains(t, FormatDate(utc.In(nairobi)), `<span class="date">6</span>`)
}

func TestFormatDate_EveryDayOfLeapYear(t *testing.T) {
	assert.Len(t, days, 7)
	assert.Len(t, months, 12)

	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		m := segments.FindStringSubmatch(FormatDate(day))
		require.NotNil(t, m, "unexpected markup for %s", day)
		assert.Equal(t, day.Format("Mon"), m[1])
		assert.Equal(t, day.Format("Jan"), m[2])
		assert.Equal(t, day.Format("2"), m[3])
		assert.Equal(t, "2024", m[4])
		day = day.AddDate(0, 0, 1)
	}
}
