package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/gallery-browser/internal/app"
	"github.com/atomicstack/gallery-browser/internal/config"
	"github.com/atomicstack/gallery-browser/internal/gallery"
	"github.com/atomicstack/gallery-browser/internal/logging"
	"github.com/atomicstack/gallery-browser/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := collectTTYDetails()
	traceStartup(runtimeCfg, tty)

	appCfg := runtimeCfg.App
	if tty.Detected != nil {
		appCfg.InitialWidth = tty.Detected.Width
		appCfg.InitialHeight = tty.Detected.Height
	}
	if err := app.Run(appCfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config, tty ttyDetails) {
	events.App.Start(startupTracePayload(cfg, tty))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    tty,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if tty.Detected != nil {
		width := tty.Detected.Width * cfg.App.CellWidth
		payload["viewport"] = map[string]interface{}{
			"pixelWidth":   width,
			"initialCount": gallery.InitialCount(width),
		}
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes stdin, stdout and stderr in that order. The first
// terminal that reports a size seeds the initial layout.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := probeTTY(f)
		if details.Detected == nil && probe.IsTerminal && probe.Error == "" {
			details.Detected = &ttyDetected{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeTTY(f *os.File) ttyProbeResult {
	probe := ttyProbeResult{Name: strings.TrimPrefix(f.Name(), "/dev/")}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
