//go:build linux

package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
)

// DbusTimers lists timer units over the systemd D-Bus API instead of
// shelling out. It renders the same tabular shape SystemctlTimers produces
// so the parsing path is shared.
type DbusTimers struct {
	Timeout time.Duration
}

func (d DbusTimers) ListTimers(ctx context.Context) (string, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultTimerTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return "", fmt.Errorf("connect to systemd: %w", err)
	}
	defer conn.Close()

	units, err := conn.ListUnitsByPatternsContext(ctx, nil, []string{"*" + timerUnitSuffix})
	if err != nil {
		return "", fmt.Errorf("list timer units: %w", err)
	}

	return renderTimerTable(units), nil
}

// renderTimerTable mimics `systemctl list-timers` closely enough for
// parseTimerTable: header, one row per unit with the unit name
// second-to-last, then the two-line footer.
func renderTimerTable(units []dbus.UnitStatus) string {
	var b strings.Builder
	b.WriteString("NEXT LEFT LAST PASSED UNIT ACTIVATES\n")
	for _, u := range units {
		service := strings.TrimSuffix(u.Name, timerUnitSuffix) + ".service"
		fmt.Fprintf(&b, "- - - - %s %s\n", u.Name, service)
	}
	fmt.Fprintf(&b, "\n%d timers listed.\n", len(units))
	return b.String()
}
