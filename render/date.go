package render

import (
	"strconv"
	"strings"
	"time"
)

var (
	days   = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// dateSegment is one styled part of a formatted date
type dateSegment struct {
	class string
	value string
}

// dateSegments splits t into weekday, month, day of month and year, using
// the time's own location
func dateSegments(t time.Time) [4]dateSegment {
	return [4]dateSegment{
		{class: "day", value: days[t.Weekday()]},
		{class: "month", value: months[t.Month()-1]},
		{class: "date", value: strconv.Itoa(t.Day())},
		{class: "year", value: strconv.Itoa(t.Year())},
	}
}

// FormatDate renders t as four styled segments separated by single spaces:
//
//	<span class="day">Tue</span> <span class="month">Mar</span> <span class="date">5</span> <span class="year">2024</span>
func FormatDate(t time.Time) string {
	var b strings.Builder
	for i, seg := range dateSegments(t) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(`<span class="`)
		b.WriteString(seg.class)
		b.WriteString(`">`)
		b.WriteString(seg.value)
		b.WriteString(`</span>`)
	}
	return b.String()
}
