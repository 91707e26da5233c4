// Package generate runs the three source loaders, merges their events into
// one document, and writes it out.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"schedview/internal/config"
	"schedview/internal/source"
	"schedview/pkg/logx"
)

// SourceCounts is the per-source event tally embedded in the document.
type SourceCounts struct {
	SystemCron int `json:"system_cron"`
	Openclaw   int `json:"openclaw"`
	Systemd    int `json:"systemd"`
	Total      int `json:"total"`
}

// Document is the output written to cron-events.json.
type Document struct {
	Generated string         `json:"generated"`
	Sources   SourceCounts   `json:"sources"`
	Events    []source.Event `json:"events"`
}

type Generator struct {
	cfg    config.Config
	timers source.TimerSource
	log    logx.Logger

	now func() time.Time
}

// New builds a Generator for cfg. The timer backend comes from
// cfg.Timers.Backend; tests swap it with SetTimerSource.
func New(cfg config.Config, log logx.Logger) *Generator {
	timeout, err := cfg.Timers.TimeoutDuration()
	if err != nil {
		// Load() validates this; a hand-built config falls back quietly.
		timeout = 0
	}

	var timers source.TimerSource
	switch cfg.Timers.Backend {
	case "dbus":
		timers = source.DbusTimers{Timeout: timeout}
	default:
		timers = source.SystemctlTimers{Timeout: timeout}
	}

	return &Generator{
		cfg:    cfg,
		timers: timers,
		log:    log,
		now:    time.Now,
	}
}

// SetTimerSource replaces the timer backend. Used by tests to inject canned
// tabular output without touching systemd.
func (g *Generator) SetTimerSource(src source.TimerSource) { g.timers = src }

// Run loads all three sources and assembles the document. Sources fail
// soft: a loader warning is logged and that source contributes zero events.
// Run itself never fails.
func (g *Generator) Run(ctx context.Context) Document {
	health := source.LoadHealthConfig(g.cfg.HealthConfigPath)
	g.warn("system cron", health.Warn)

	openclaw := source.LoadOpenclawJobs(g.cfg.OpenclawJobsPath)
	g.warn("openclaw", openclaw.Warn)

	timers := source.LoadTimers(ctx, g.timers)
	g.warn("systemd", timers.Warn)

	// Fixed concatenation order: health config, openclaw, timers. Order is
	// preserved within and across sources; no sorting, no deduplication.
	events := make([]source.Event, 0, len(health.Events)+len(openclaw.Events)+len(timers.Events))
	events = append(events, health.Events...)
	events = append(events, openclaw.Events...)
	events = append(events, timers.Events...)

	systemCron := 0
	for _, ev := range events {
		if ev.Source == source.SourceSystemCron {
			systemCron++
		}
	}

	doc := Document{
		Generated: g.now().Format(time.RFC3339),
		Sources: SourceCounts{
			SystemCron: systemCron,
			Openclaw:   len(openclaw.Events),
			Systemd:    len(timers.Events),
			Total:      len(events),
		},
		Events: events,
	}

	g.log.Info("sources loaded",
		logx.Int("system_cron", doc.Sources.SystemCron),
		logx.Int("openclaw", doc.Sources.Openclaw),
		logx.Int("systemd", doc.Sources.Systemd),
	)
	return doc
}

// Write serializes doc as 2-space-indented JSON to the configured output
// path, creating the parent directory if needed. The file is fully
// overwritten each run. A write failure is the one genuinely fatal error
// in this program.
func (g *Generator) Write(doc Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	b = append(b, '\n')

	path := g.cfg.OutputPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// OutputPath reports where Write puts the document.
func (g *Generator) OutputPath() string { return g.cfg.OutputPath }

func (g *Generator) warn(name string, err error) {
	if err == nil {
		return
	}
	g.log.Warn("source failed, contributing zero events",
		logx.String("source", name), logx.Err(err))
}
