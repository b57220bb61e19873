// Package logging routes the standard logger to an optional log file and,
// in debug mode, to stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init points the standard logger at logPath (appending) and at stderr when
// debug is set. With neither, log output is discarded.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if debug {
		writers = append(writers, os.Stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted line to the standard logger.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRequest records one served HTTP request.
func LogRequest(method, path string, status int, elapsed time.Duration) {
	log.Println(buildRequestMessage(method, path, status, elapsed))
}

func buildRequestMessage(method, path string, status int, elapsed time.Duration) string {
	m := strings.ToUpper(strings.TrimSpace(method))
	if m == "" {
		m = "UNKNOWN"
	}
	p := strings.TrimSpace(path)
	if p == "" {
		p = "/"
	}
	parts := []string{"[SERVE]", m, p}
	parts = append(parts, fmt.Sprintf("status=%d", status))
	parts = append(parts, fmt.Sprintf("elapsed=%s", elapsed.Round(time.Microsecond)))
	return strings.Join(parts, " ")
}
