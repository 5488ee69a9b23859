package debug

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

var (
	enabled bool
	logFile *os.File
	logLock *flock.Flock
	logPath string
	session string
	mu      sync.Mutex
)

// ErrLogInUse is returned by Enable when neither the log file nor its
// per-session fallback can be owned.
var ErrLogInUse = errors.New("debug log is in use by another pawprint process")

// DefaultLogPath returns the log location used when none is configured.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pawprint", "debug.log")
}

// sessionPath returns the fallback log for a session: debug.log becomes
// debug.<session>.log.
func sessionPath(path, id string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "." + id + ext
}

// Enable turns on debug logging to the specified file. When another
// pawprint process owns that file, the log goes to a per-session file
// next to it; Path reports which one is in use.
func Enable(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	id := uuid.NewString()[:8]

	// The log is truncated on open, so only one process may own it.
	lock, err := tryLock(path)
	if err != nil {
		return err
	}
	if lock == nil {
		path = sessionPath(path, id)
		if lock, err = tryLock(path); err != nil {
			return err
		}
		if lock == nil {
			return fmt.Errorf("%s: %w", path, ErrLogInUse)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		_ = lock.Unlock()
		return err
	}

	logFile = f
	logLock = lock
	logPath = path
	session = id
	enabled = true

	logLocked("Debug logging enabled")
	return nil
}

// tryLock takes the lock guarding path. It returns nil without an error
// when another process holds it.
func tryLock(path string) (*flock.Flock, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, nil
	}
	return lock, nil
}

// Path returns the file being logged to, or "" when logging is off.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return ""
	}
	return logPath
}

// Close closes the debug log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if logLock != nil {
		_ = logLock.Unlock()
		logLock = nil
	}
	enabled = false
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Session returns the id tagging this process's log lines, or "" when
// logging is off.
func Session() string {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return ""
	}
	return session
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	logLocked(format, args...)
}

func logLocked(format string, args ...interface{}) {
	if !enabled || logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(logFile, "[%s] [%s] %s\n", timestamp, session, msg)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)

	return func() {
		Log("%s completed in %v", name, time.Since(start))
	}
}
