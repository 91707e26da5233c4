package generate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"schedview/internal/config"
	"schedview/internal/source"
	"schedview/pkg/logx"
)

type fakeTimerSource struct {
	out string
	err error
}

func (f fakeTimerSource) ListTimers(context.Context) (string, error) {
	return f.out, f.err
}

func testConfig(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		HealthConfigPath: filepath.Join(dir, "health.json"),
		OpenclawJobsPath: filepath.Join(dir, "jobs.json"),
		OutputPath:       filepath.Join(dir, "dist", "cron-events.json"),
	}
	return cfg, dir
}

func TestRunEndToEnd(t *testing.T) {
	t.Parallel()
	cfg, dir := testConfig(t)

	health := `{"groups": {"scheduled-jobs": {"components": [{"id": "a", "name": "Backup", "schedule": "daily 2am"}]}}}`
	jobs := `{"jobs": [{"id": "abcdefgh-1234", "name": "Sync", "enabled": true, "schedule": {"kind": "cron", "expr": "*/30 * * * *"}}]}`
	if err := os.WriteFile(cfg.HealthConfigPath, []byte(health), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.OpenclawJobsPath, []byte(jobs), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := New(cfg, logx.Nop())
	gen.SetTimerSource(fakeTimerSource{})
	gen.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	doc := gen.Run(context.Background())

	if len(doc.Events) != 2 {
		t.Fatalf("got %d events, want 2: %+v", len(doc.Events), doc.Events)
	}
	backup := doc.Events[0]
	if backup.Source != source.SourceSystemCron {
		t.Fatalf("first event source = %q", backup.Source)
	}
	if got := backup.Schedule.Times; len(got) != 1 || got[0] != "02:00" {
		t.Fatalf("backup times = %v, want [02:00]", got)
	}
	sync := doc.Events[1]
	if sync.ID != "openclaw-abcdefgh" {
		t.Fatalf("second event id = %q, want openclaw-abcdefgh", sync.ID)
	}
	if sync.Schedule.Frequency != "every-30-min" {
		t.Fatalf("sync frequency = %q", sync.Schedule.Frequency)
	}

	want := SourceCounts{SystemCron: 1, Openclaw: 1, Systemd: 0, Total: 2}
	if doc.Sources != want {
		t.Fatalf("Sources = %+v, want %+v", doc.Sources, want)
	}
	if doc.Generated != "2026-08-30T12:00:00Z" {
		t.Fatalf("Generated = %q", doc.Generated)
	}
	_ = dir
}

func TestRunAllSourcesMissing(t *testing.T) {
	t.Parallel()
	cfg, _ := testConfig(t)

	gen := New(cfg, logx.Nop())
	gen.SetTimerSource(fakeTimerSource{})

	doc := gen.Run(context.Background())
	if doc.Sources.SystemCron != 0 || doc.Sources.Total != 0 {
		t.Fatalf("Sources = %+v, want all zero", doc.Sources)
	}
	if doc.Events == nil {
		t.Fatal("Events must be non-nil so the document serializes as []")
	}
	if len(doc.Events) != 0 {
		t.Fatalf("got %d events, want 0", len(doc.Events))
	}
}

func TestRunTimerEventsAppendLast(t *testing.T) {
	t.Parallel()
	cfg, _ := testConfig(t)
	health := `{"groups": {"scheduled-jobs": {"components": [{"id": "a", "name": "A", "schedule": "hourly"}]}}}`
	if err := os.WriteFile(cfg.HealthConfigPath, []byte(health), 0o644); err != nil {
		t.Fatal(err)
	}

	table := "UNIT HEADER\n" +
		"a b c d night-sync.timer night-sync.service\n" +
		"\n1 timers listed.\n"
	gen := New(cfg, logx.Nop())
	gen.SetTimerSource(fakeTimerSource{out: table})

	doc := gen.Run(context.Background())
	if len(doc.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(doc.Events))
	}
	if doc.Events[1].ID != "night-sync" || doc.Events[1].Source != source.SourceSystemd {
		t.Fatalf("last event = %+v, want the timer", doc.Events[1])
	}
	if doc.Sources.Systemd != 1 {
		t.Fatalf("Sources.Systemd = %d, want 1", doc.Sources.Systemd)
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	cfg, _ := testConfig(t)

	gen := New(cfg, logx.Nop())
	gen.SetTimerSource(fakeTimerSource{})
	doc := gen.Run(context.Background())

	if err := gen.Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	b, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), "\n  \"sources\"") {
		t.Fatalf("output not 2-space indented:\n%s", b)
	}
	if !strings.Contains(string(b), `"events": []`) {
		t.Fatalf("empty events must serialize as []:\n%s", b)
	}

	var round Document
	if err := json.Unmarshal(b, &round); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if round.Sources != doc.Sources {
		t.Fatalf("round-tripped sources = %+v, want %+v", round.Sources, doc.Sources)
	}
}

func TestWriteFailureSurfaces(t *testing.T) {
	t.Parallel()
	cfg, dir := testConfig(t)
	// Make the output path unwritable by placing a file where the parent
	// directory should be.
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.OutputPath = filepath.Join(blocker, "cron-events.json")

	gen := New(cfg, logx.Nop())
	gen.SetTimerSource(fakeTimerSource{})
	if err := gen.Write(gen.Run(context.Background())); err == nil {
		t.Fatal("expected write error")
	}
}
