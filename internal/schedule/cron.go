package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

var reStepMinute = regexp.MustCompile(`^\*/(\d+)$`)

// ParseCron classifies a standard 5-field cron expression
// (minute, hour, day-of-month, month, weekday).
//
// Anything that is not a well-formed 5-field expression — wrong field count,
// or a field robfig/cron rejects — degrades to "custom" with the raw input
// as Display and no times. ParseCron never returns an error.
func ParseCron(expr string) Schedule {
	sched := Schedule{
		Display:   expr,
		Frequency: FreqCustom,
		Times:     []string{},
	}

	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return sched
	}
	if _, err := cron.ParseStandard(expr); err != nil {
		return sched
	}

	minute, hour := fields[0], fields[1]
	dom, month, dow := fields[2], fields[3], fields[4]

	// Step minute short-circuits: "*/N ...." is every-N-min no matter what
	// the remaining fields constrain.
	if m := reStepMinute.FindStringSubmatch(minute); m != nil {
		sched.Frequency = "every-" + m[1] + "-min"
		sched.Times = []string{"recurring"}
		return sched
	}

	wild := func(f string) bool { return f == "*" }

	if mm, ok := fixed(minute); ok && wild(hour) && wild(dom) && wild(month) && wild(dow) {
		sched.Frequency = FreqHourly
		sched.Times = []string{fmt.Sprintf(":%02d", mm)}
		return sched
	}

	if wild(dom) && wild(month) && wild(dow) {
		mm, mOK := fixed(minute)
		hh, hOK := fixed(hour)
		if mOK || hOK {
			sched.Frequency = FreqDaily
			sched.Times = []string{fmt.Sprintf("%02d:%02d", hh, mm)}
			sched.Display = fmt.Sprintf("daily at %s", render12h(hh, mm))
			return sched
		}
	}

	// Weekly/monthly cron patterns land here as "custom" (see package doc).
	return sched
}

// fixed parses a cron field as a plain integer. Wildcards, ranges, and
// lists report ok=false, which the daily branch treats as 0.
func fixed(field string) (int, bool) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return n, true
}

// render12h formats a 24-hour time in 12-hour am/pm notation.
// Noon and midnight render as 12, not 0.
func render12h(hour, minute int) string {
	meridiem := "am"
	if hour >= 12 {
		meridiem = "pm"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, minute, meridiem)
}
