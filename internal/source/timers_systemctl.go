package source

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

const defaultTimerTimeout = 5 * time.Second

// SystemctlTimers lists timer units by shelling out to
// `systemctl list-timers`. The call is bounded by Timeout so a wedged
// systemctl cannot hang the whole run.
type SystemctlTimers struct {
	Timeout time.Duration
}

func (s SystemctlTimers) ListTimers(ctx context.Context) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimerTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "systemctl", "list-timers", "--no-pager").Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("systemctl list-timers: %w", ctx.Err())
		}
		// Non-zero exit means systemd has nothing to report here
		// (e.g. no systemd on this host); not worth a warning.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("systemctl list-timers: %w", err)
	}
	return string(out), nil
}
