package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultFilename builds the suggested export filename for a
// collection, e.g. "projects-2026-08-28.csv".
func DefaultFilename(collection string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", collection, now.Format(dateLayout), f.Ext())
}

// WriteFile writes an export document, creating parent directories as
// needed.
func WriteFile(path, document string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
