package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// MarkerDir is the per-project state directory under the project root.
const MarkerDir = ".envcheck"

// MarkerFile records the timestamp of the last run with no failures.
// Advisory only; it never influences classification or the exit code.
const MarkerFile = "last-pass"

// markerLock guards marker writes against concurrent envcheck invocations.
const markerLock = ".lock"

// MarkClean records that a run completed with no failures.
func MarkClean(root string) error {
	dir := filepath.Join(root, MarkerDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create marker directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, markerLock))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire marker lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	content := []byte(time.Now().Format(time.RFC3339))
	return os.WriteFile(filepath.Join(dir, MarkerFile), content, 0o644)
}

// LastClean returns when the last clean run finished. The boolean is false
// when no clean run has been recorded or the marker is unreadable.
func LastClean(root string) (time.Time, bool) {
	content, err := os.ReadFile(filepath.Join(root, MarkerDir, MarkerFile))
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, string(content))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClearMarker removes the marker, forcing the next run to be treated as first.
func ClearMarker(root string) error {
	err := os.Remove(filepath.Join(root, MarkerDir, MarkerFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove marker file: %w", err)
	}
	return nil
}
