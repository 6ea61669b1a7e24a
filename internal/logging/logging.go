package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "gallery-browser.log"

var (
	mu             sync.Mutex
	traceEnabled   bool
	verboseEnabled bool
	logPath        = defaultLogFile
)

// Error appends err to the log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(func(f *os.File) error {
		l := log.New(f, "", log.LstdFlags)
		l.Println("error:", err)
		return nil
	})
}

// Info appends a formatted line to the log file when verbose logging is on.
func Info(format string, args ...interface{}) {
	mu.Lock()
	enabled := verboseEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	write(func(f *os.File) error {
		l := log.New(f, "", log.LstdFlags)
		l.Printf("info: "+format, args...)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// SetVerbose toggles Info output.
func SetVerbose(enabled bool) {
	mu.Lock()
	verboseEnabled = enabled
	mu.Unlock()
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}
	write(func(f *os.File) error {
		return json.NewEncoder(f).Encode(entry)
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func write(fn func(*os.File) error) {
	f, err := os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := fn(f); err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
	}
}
