package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadHealthConfig(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "health.json", `{
  "groups": {
    "services": {
      "components": [
        {"id": "api", "name": "API", "type": "service"},
        {"id": "rotate", "name": "Log Rotate", "type": "system_cron", "schedule": "daily 4am", "script": "/opt/rotate.sh"},
        {"id": "no-schedule", "name": "Orphan", "type": "system_cron"}
      ]
    },
    "scheduled-jobs": {
      "components": [
        {"id": "backup", "name": "Backup", "schedule": "daily 2am", "logfile": "/var/log/backup.log"},
        {"id": "report", "name": "Report", "schedule": "weekly mon 9am"},
        {"id": "untyped", "name": "No Schedule Here"}
      ]
    }
  }
}`)

	res := LoadHealthConfig(path)
	if res.Warn != nil {
		t.Fatalf("unexpected warning: %v", res.Warn)
	}
	if len(res.Events) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(res.Events), res.Events)
	}

	// scheduled-jobs components first, then system_cron components from
	// other groups, each in file order.
	if res.Events[0].ID != "backup" || res.Events[1].ID != "report" || res.Events[2].ID != "rotate" {
		t.Fatalf("unexpected order: %s, %s, %s", res.Events[0].ID, res.Events[1].ID, res.Events[2].ID)
	}

	backup := res.Events[0]
	if backup.Source != SourceSystemCron {
		t.Fatalf("Source = %q, want %q", backup.Source, SourceSystemCron)
	}
	if backup.Logfile != "/var/log/backup.log" {
		t.Fatalf("Logfile = %q", backup.Logfile)
	}
	if got := backup.Schedule.Times; len(got) != 1 || got[0] != "02:00" {
		t.Fatalf("backup times = %v, want [02:00]", got)
	}

	rotate := res.Events[2]
	if rotate.Script != "/opt/rotate.sh" {
		t.Fatalf("Script = %q", rotate.Script)
	}
	if got := rotate.Schedule.Times; len(got) != 1 || got[0] != "04:00" {
		t.Fatalf("rotate times = %v, want [04:00]", got)
	}
}

func TestLoadHealthConfigEmptyScheduleString(t *testing.T) {
	t.Parallel()
	// Present-but-empty schedule still counts as "carries a schedule field";
	// it just normalizes to unknown.
	path := writeFile(t, "health.json", `{
  "groups": {
    "scheduled-jobs": {"components": [{"id": "x", "name": "X", "schedule": ""}]}
  }
}`)
	res := LoadHealthConfig(path)
	if res.Warn != nil {
		t.Fatalf("unexpected warning: %v", res.Warn)
	}
	if len(res.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(res.Events))
	}
	if res.Events[0].Schedule.Frequency != "unknown" {
		t.Fatalf("Frequency = %q, want unknown", res.Events[0].Schedule.Frequency)
	}
}

func TestLoadHealthConfigMissingFile(t *testing.T) {
	t.Parallel()
	res := LoadHealthConfig(filepath.Join(t.TempDir(), "nope.json"))
	if res.Warn == nil {
		t.Fatal("expected a warning for a missing file")
	}
	if len(res.Events) != 0 {
		t.Fatalf("got %d events, want 0", len(res.Events))
	}
}

func TestLoadHealthConfigMalformedJSON(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "health.json", `{"groups": [`)
	res := LoadHealthConfig(path)
	if res.Warn == nil {
		t.Fatal("expected a warning for malformed JSON")
	}
	if len(res.Events) != 0 {
		t.Fatalf("got %d events, want 0", len(res.Events))
	}
}
