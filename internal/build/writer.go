package build

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeArtifact writes data to path. Parent directories are created as needed
// and existing files are replaced.
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fileSystemError("failed to create output directory", path, fmt.Errorf("create output directory: %w", err))
	}

	// #nosec G306 -- generated site files are published and must be world-readable.
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fileSystemError("failed to write generated file", path, err)
	}
	return nil
}
