//go:build !linux

package source

import (
	"context"
	"errors"
	"time"
)

var errDbusUnsupported = errors.New("dbus timer source: unsupported OS (linux only)")

// DbusTimers is linux-only; elsewhere it degrades to a soft per-source
// failure, same as any other unreachable timer backend.
type DbusTimers struct {
	Timeout time.Duration
}

func (DbusTimers) ListTimers(context.Context) (string, error) {
	return "", errDbusUnsupported
}
