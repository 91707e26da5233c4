// Command schedview aggregates schedule metadata from the health-monitor
// config, the OpenClaw cron job file, and the systemd timer list into one
// cron-events.json document.
//
// One shot: read everything, normalize, write the document, exit. Source
// failures are downgraded to warnings; only a failure to write the output
// (or to load an explicitly given config file) exits non-zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedview/internal/config"
	"schedview/internal/generate"
	"schedview/pkg/logx"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to schedview config (json or yaml; optional)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := logx.NewConsole(cfg.Logging.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gen := generate.New(cfg, log)
	doc := gen.Run(ctx)
	if err := gen.Write(doc); err != nil {
		log.Error("writing output failed", logx.Err(err))
		os.Exit(1)
	}

	fmt.Fprintf(logx.Stdout(), "Generated %d events to %s\n", len(doc.Events), gen.OutputPath())
}
