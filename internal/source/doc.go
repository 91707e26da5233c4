// Package source loads schedule events from the three supported origins:
// the health-monitor config file, the OpenClaw cron job file, and the
// systemd timer listing.
//
// Every loader is fail-soft: it returns a Result carrying either events or a
// recorded warning, never an error that would abort the run. A source that
// cannot be read simply contributes zero events.
package source
