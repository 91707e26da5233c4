package schedule

// Frequency vocabulary. The every-N-min family is open (derived from cron
// step minutes), so Frequency stays a plain string rather than an enum type.
const (
	FreqHourly  = "hourly"
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
	FreqCustom  = "custom"
	FreqTimer   = "timer"
	FreqUnknown = "unknown"
)

// Schedule is the normalized form of a schedule description.
//
// Display keeps the raw input (or a rendered summary for decoded cron
// expressions) for humans; Frequency and Times are the machine-readable
// classification. Day is only set for weekly phrases.
type Schedule struct {
	Display   string   `json:"display"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	Day       string   `json:"day,omitempty"`
}
