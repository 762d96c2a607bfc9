package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/mholt/archiver/v3"
)

// ArchiveDir writes sourceDir into a zip archive at outputPath, replacing any
// archive already there. The archive contains sourceDir as its top folder.
func ArchiveDir(sourceDir, outputPath string) error {
	if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove existing archive: %w", err)
	}

	if err := archiver.Archive([]string{sourceDir}, outputPath); err != nil {
		return fmt.Errorf("failed to create archive %s: %w", outputPath, err)
	}

	return nil
}
