package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reMinuteSuffix = regexp.MustCompile(`:(\d+)`)
	reClock        = regexp.MustCompile(`(\d+):(\d+)(am|pm)`)
	reHourOnly     = regexp.MustCompile(`(\d+)(am|pm)`)
	reDayClock     = regexp.MustCompile(`(\w+)\s+(\d+):(\d+)(am|pm)`)
	reDayHour      = regexp.MustCompile(`(\w+)\s+(\d+)(am|pm)`)
)

// ParsePhrase classifies a human-readable schedule phrase.
//
// Matching is case-insensitive and priority ordered; the first branch that
// matches wins. Unrecognized text yields frequency "unknown" with no times.
// Display is always the raw input.
func ParsePhrase(text string) Schedule {
	sched := Schedule{
		Display:   text,
		Frequency: FreqUnknown,
		Times:     []string{},
	}

	s := strings.ToLower(text)

	switch {
	case strings.Contains(s, "every 5 min"):
		sched.Frequency = "every-5-min"
		sched.Times = []string{"recurring"}
	case strings.Contains(s, "every 10 min"):
		sched.Frequency = "every-10-min"
		sched.Times = []string{"recurring"}
	case strings.Contains(s, "every 15 min"):
		sched.Frequency = "every-15-min"
		sched.Times = []string{"recurring"}
	case strings.Contains(s, "hourly"):
		sched.Frequency = FreqHourly
		if m := reMinuteSuffix.FindStringSubmatch(s); m != nil {
			sched.Times = []string{":" + m[1]}
		} else {
			sched.Times = []string{":00"}
		}
	case strings.Contains(s, "daily"):
		sched.Frequency = FreqDaily
		sched.Times = clockTimes(s)
	case strings.Contains(s, "weekly"):
		sched.Frequency = FreqWeekly
		// Day + H:MM first, then day + bare hour as fallback.
		if m := reDayClock.FindStringSubmatch(s); m != nil {
			sched.Day = capitalize(m[1])
			sched.Times = []string{to24(m[2], m[3], m[4])}
		} else if m := reDayHour.FindStringSubmatch(s); m != nil {
			sched.Day = capitalize(m[1])
			sched.Times = []string{to24(m[2], "00", m[3])}
		}
	case strings.Contains(s, "monthly"):
		sched.Frequency = FreqMonthly
		sched.Times = clockTimes(s)
	}

	return sched
}

// clockTimes extracts a single "HH:MM" time from a lowercased phrase.
// H:MM(am|pm) is tried first; a bare H(am|pm) is the fallback.
func clockTimes(s string) []string {
	if m := reClock.FindStringSubmatch(s); m != nil {
		return []string{to24(m[1], m[2], m[3])}
	}
	if m := reHourOnly.FindStringSubmatch(s); m != nil {
		return []string{to24(m[1], "00", m[2])}
	}
	return []string{}
}

// to24 converts a captured 12-hour time to "HH:MM".
// Rule: pm and hour != 12 adds 12; am and hour == 12 becomes 0.
func to24(hourStr, minute, meridiem string) string {
	hour, _ := strconv.Atoi(hourStr)
	if meridiem == "pm" && hour != 12 {
		hour += 12
	} else if meridiem == "am" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%s", hour, minute)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
