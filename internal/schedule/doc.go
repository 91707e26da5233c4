// Package schedule normalizes schedule descriptions into a common shape.
//
// Two inputs exist in the wild:
//
//   - Free-text phrases from the health-monitor config, e.g. "daily 3am",
//     "every 5 min", "weekly mon 9:30am". ParsePhrase classifies these.
//   - 5-field cron expressions from OpenClaw job files, e.g. "*/30 * * * *".
//     ParseCron classifies these, validating the expression with robfig/cron
//     first.
//
// Both parsers are pure and total: input that matches nothing degrades to an
// "unknown" (phrase) or "custom" (cron) record instead of failing. Callers
// therefore never have to guard a schedule lookup.
//
// Known gap: cron expressions constrained by day-of-week or day-of-month are
// reported as "custom" rather than decoded into weekly/monthly semantics.
package schedule
