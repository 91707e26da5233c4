package source

import (
	"encoding/json"
	"fmt"
	"os"

	"schedview/internal/schedule"
)

const openclawIDPrefix = "openclaw-"

// Jobs are truncated to this many id characters when synthesizing event ids;
// OpenClaw job ids are UUIDs and the first chunk is enough to eyeball.
const openclawIDLen = 8

type openclawSchedule struct {
	Kind string `json:"kind"`
	Expr string `json:"expr"`
}

type openclawJob struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Enabled is a pointer so an omitted flag defaults to enabled.
	Enabled *bool `json:"enabled"`

	Schedule    openclawSchedule `json:"schedule"`
	Description string           `json:"description"`
}

type openclawFile struct {
	Jobs []openclawJob `json:"jobs"`
}

// LoadOpenclawJobs reads the OpenClaw cron job file and converts enabled
// cron-kind jobs into events tagged "openclaw cron".
//
// Jobs with other schedule kinds ("at", "interval", ...) are silently
// skipped; only cron expressions have a normalized form here.
func LoadOpenclawJobs(path string) Result {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{Warn: fmt.Errorf("openclaw jobs: %w", err)}
	}

	var f openclawFile
	if err := json.Unmarshal(b, &f); err != nil {
		return Result{Warn: fmt.Errorf("openclaw jobs %s: %w", path, err)}
	}

	var events []Event
	for _, job := range f.Jobs {
		if job.Enabled != nil && !*job.Enabled {
			continue
		}
		if job.Schedule.Kind != "cron" {
			continue
		}
		events = append(events, Event{
			ID:          openclawIDPrefix + shortID(job.ID),
			Name:        job.Name,
			Schedule:    schedule.ParseCron(job.Schedule.Expr),
			Source:      SourceOpenclaw,
			Description: job.Description,
		})
	}

	return Result{Events: events}
}

func shortID(id string) string {
	if len(id) > openclawIDLen {
		return id[:openclawIDLen]
	}
	return id
}
