package source

import (
	"context"
	"fmt"
	"strings"

	"schedview/internal/schedule"
)

const (
	timerUnitSuffix = ".timer"
	snapUnitPrefix  = "snap."
)

// What a timer event displays: systemd owns the actual calendar spec, we
// only record that the unit exists.
const timerDisplay = "systemd timer"

// TimerSource produces the raw tabular timer listing (header row, data rows,
// two-line footer) that LoadTimers parses. Implementations: SystemctlTimers
// (default, shells out) and DbusTimers (linux only). Tests inject canned
// text through a fake.
type TimerSource interface {
	ListTimers(ctx context.Context) (string, error)
}

// LoadTimers asks src for the timer table and converts user-relevant timer
// units into events tagged "systemd timer".
func LoadTimers(ctx context.Context, src TimerSource) Result {
	out, err := src.ListTimers(ctx)
	if err != nil {
		return Result{Warn: fmt.Errorf("systemd timers: %w", err)}
	}
	return Result{Events: parseTimerTable(out)}
}

// parseTimerTable walks `systemctl list-timers` style output.
//
// Layout contract: first line is the column header, last two lines are the
// summary footer. Data rows are whitespace-separated with the unit name in
// the second-to-last column (ACTIVATES is last). Units not ending in
// ".timer" and snap-managed units are skipped.
func parseTimerTable(out string) []Event {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) <= 3 {
		return nil
	}
	lines = lines[1 : len(lines)-2]

	var events []Event
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		unit := fields[len(fields)-2]
		if !strings.HasSuffix(unit, timerUnitSuffix) {
			continue
		}
		if strings.HasPrefix(unit, snapUnitPrefix) {
			continue
		}

		base := strings.TrimSuffix(unit, timerUnitSuffix)
		events = append(events, Event{
			ID:   base,
			Name: humanizeUnit(base),
			Schedule: schedule.Schedule{
				Display:   timerDisplay,
				Frequency: schedule.FreqTimer,
				Times:     []string{},
			},
			Source: SourceSystemd,
		})
	}
	return events
}

// humanizeUnit turns "backup-db" into "Backup Db".
func humanizeUnit(base string) string {
	repl := strings.NewReplacer("-", " ", "_", " ")
	words := strings.Fields(repl.Replace(base))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
