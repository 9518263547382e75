package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// HoursClosed marks a day without trading hours.
const HoursClosed = "closed"

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// WeekdayKeys maps the short day keys used by hours_<key> columns and JSON payloads.
var WeekdayKeys = []struct {
	Key string
	Day time.Weekday
}{
	{"mon", time.Monday},
	{"tue", time.Tuesday},
	{"wed", time.Wednesday},
	{"thu", time.Thursday},
	{"fri", time.Friday},
	{"sat", time.Saturday},
	{"sun", time.Sunday},
}

// WeeklyHours holds one "HH:MM-HH:MM" or "closed" string per weekday.
type WeeklyHours struct {
	Mon string
	Tue string
	Wed string
	Thu string
	Fri string
	Sat string
	Sun string
}

// ClosedAllWeek returns hours with every day set to closed.
func ClosedAllWeek() WeeklyHours {
	return WeeklyHours{
		Mon: HoursClosed, Tue: HoursClosed, Wed: HoursClosed, Thu: HoursClosed,
		Fri: HoursClosed, Sat: HoursClosed, Sun: HoursClosed,
	}
}

// For returns the hours string for the given weekday.
func (h WeeklyHours) For(day time.Weekday) string {
	switch day {
	case time.Monday:
		return h.Mon
	case time.Tuesday:
		return h.Tue
	case time.Wednesday:
		return h.Wed
	case time.Thursday:
		return h.Thu
	case time.Friday:
		return h.Fri
	case time.Saturday:
		return h.Sat
	default:
		return h.Sun
	}
}

// Set replaces the hours string for the given weekday.
func (h *WeeklyHours) Set(day time.Weekday, hours string) {
	switch day {
	case time.Monday:
		h.Mon = hours
	case time.Tuesday:
		h.Tue = hours
	case time.Wednesday:
		h.Wed = hours
	case time.Thursday:
		h.Thu = hours
	case time.Friday:
		h.Fri = hours
	case time.Saturday:
		h.Sat = hours
	case time.Sunday:
		h.Sun = hours
	}
}

// ValidateHours accepts "closed" in any case or "HH:MM-HH:MM" with a lenient leading
// zero, hour in [0,24], minute in [0,59] and 24 only as 24:00. Overnight windows are valid.
func ValidateHours(hours string) error {
	hours = strings.TrimSpace(hours)
	if strings.EqualFold(hours, HoursClosed) {
		return nil
	}

	_, _, err := parseWindow(hours)

	return err
}

// parseWindow returns the opening and closing minute-of-day of an "HH:MM-HH:MM" string.
func parseWindow(hours string) (openAt, closeAt int, err error) {
	parts := strings.Split(hours, "-")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid hours %q: expected HH:MM-HH:MM", hours)
	}

	if openAt, err = parseClock(parts[0]); err != nil {
		return 0, 0, err
	}
	if closeAt, err = parseClock(parts[1]); err != nil {
		return 0, 0, err
	}

	return openAt, closeAt, nil
}

func parseClock(value string) (int, error) {
	value = strings.TrimSpace(value)
	match := clockPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, errors.Errorf("invalid time %q: expected HH:MM", value)
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if hour > 24 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, errors.Errorf("time %q out of range", value)
	}

	return hour*60 + minute, nil
}

// hoursContain evaluates a single day's hours string at t. Malformed strings are closed.
func hoursContain(hours string, t time.Time) bool {
	hours = strings.TrimSpace(hours)
	if hours == "" || strings.EqualFold(hours, HoursClosed) {
		return false
	}

	openAt, closeAt, err := parseWindow(hours)
	if err != nil {
		return false
	}

	now := t.Hour()*60 + t.Minute()
	switch {
	case openAt < closeAt:
		return openAt <= now && now < closeAt
	case openAt > closeAt:
		// Window runs past midnight, e.g. 22:00-06:00.
		return now >= openAt || now < closeAt
	default:
		return false
	}
}
