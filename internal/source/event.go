package source

import "schedview/internal/schedule"

// Source tags as they appear in the output document.
const (
	SourceSystemCron = "system cron"
	SourceOpenclaw   = "openclaw cron"
	SourceSystemd    = "systemd timer"
)

// Event is one scheduled thing, regardless of origin.
//
// ID is not unique across sources; duplicates are possible and acceptable.
// Logfile, Script, and Description are only populated by the sources that
// carry them.
type Event struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Schedule    schedule.Schedule `json:"schedule"`
	Source      string            `json:"source"`
	Logfile     string            `json:"logfile,omitempty"`
	Script      string            `json:"script,omitempty"`
	Description string            `json:"description,omitempty"`
}

// Result is what a loader hands back: events on success, a recorded warning
// on failure. Both may be empty (a readable source with nothing scheduled).
// The aggregator logs Warn and moves on; nothing here ever aborts a run.
type Result struct {
	Events []Event
	Warn   error
}
