package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. Each file goes to its own Dir unless
// outputDir is set, in which case all files go there.
// A stale .error sidecar left by an earlier failed run is removed.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		dir := file.Dir
		if outputDir != "" {
			dir = outputDir
		}

		err := os.MkdirAll(dir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(dir, file.Filename)

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		err = os.Remove(outputPath + ".error")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing sidecar of %s: %w", file.Filename, err)
		}
	}

	return nil
}
