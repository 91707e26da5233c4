package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"schedview/internal/schedule"
)

// Group holding explicitly scheduled jobs; harvested first and in full.
const scheduledJobsGroup = "scheduled-jobs"

// Component type marking a system-level cron entry in any other group.
const typeSystemCron = "system_cron"

type healthComponent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	// Schedule is a pointer so "field absent" and "empty string" are
	// distinguishable: only components that carry the field become events.
	Schedule *string `json:"schedule"`

	Logfile string `json:"logfile"`
	Script  string `json:"script"`
}

type healthGroup struct {
	Components []healthComponent `json:"components"`
}

// healthGroups decodes the top-level "groups" object while preserving the
// key order of the file, so pass two walks groups in document order and the
// output stays deterministic run to run.
type healthGroups struct {
	order []string
	byID  map[string]healthGroup
}

func (g *healthGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("groups: expected object, got %v", tok)
	}

	g.byID = make(map[string]healthGroup)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("groups: non-string key %v", keyTok)
		}
		var grp healthGroup
		if err := dec.Decode(&grp); err != nil {
			return fmt.Errorf("groups[%s]: %w", key, err)
		}
		g.order = append(g.order, key)
		g.byID[key] = grp
	}

	_, err = dec.Token() // closing '}'
	return err
}

type healthConfig struct {
	Groups healthGroups `json:"groups"`
}

// LoadHealthConfig reads the health-monitor config and extracts scheduled
// components as events tagged "system cron".
//
// Two passes: everything in the "scheduled-jobs" group that carries a
// schedule, then components of other groups whose type is system_cron (and
// that also carry a schedule).
func LoadHealthConfig(path string) Result {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{Warn: fmt.Errorf("health config: %w", err)}
	}

	var cfg healthConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Result{Warn: fmt.Errorf("health config %s: %w", path, err)}
	}

	var events []Event
	if grp, ok := cfg.Groups.byID[scheduledJobsGroup]; ok {
		for _, c := range grp.Components {
			if c.Schedule == nil {
				continue
			}
			events = append(events, componentEvent(c))
		}
	}
	for _, id := range cfg.Groups.order {
		if id == scheduledJobsGroup {
			continue
		}
		for _, c := range cfg.Groups.byID[id].Components {
			if c.Type != typeSystemCron || c.Schedule == nil {
				continue
			}
			events = append(events, componentEvent(c))
		}
	}

	return Result{Events: events}
}

func componentEvent(c healthComponent) Event {
	return Event{
		ID:       c.ID,
		Name:     c.Name,
		Schedule: schedule.ParsePhrase(*c.Schedule),
		Source:   SourceSystemCron,
		Logfile:  c.Logfile,
		Script:   c.Script,
	}
}
