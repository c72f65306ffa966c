package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	Logger  = log.New(io.Discard, "", 0)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at debug.log inside logDir, creating the
// directory if needed. Until this is called, log output is discarded.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, "[file-journal] ", log.LstdFlags|log.Lshortfile)

	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
