package screenshots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mobile-next/screenshot-reporter/utils"
)

func resetReportDir(outputDir string) error {
	return utils.ResetDir(outputDir)
}

// simplifyDirectoryStructure moves every entry of outputDir/intermediate up
// into outputDir and removes the emptied intermediate directory. A missing
// intermediate directory leaves outputDir untouched.
func simplifyDirectoryStructure(outputDir, intermediate string) error {
	nestedDir := filepath.Join(outputDir, intermediate)

	entries, err := os.ReadDir(nestedDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", nestedDir, err)
	}

	for _, entry := range entries {
		src := filepath.Join(nestedDir, entry.Name())
		dst := filepath.Join(outputDir, entry.Name())
		if err := utils.MoveEntry(src, dst); err != nil {
			return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
		}
	}

	if err := os.Remove(nestedDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", nestedDir, err)
	}

	return nil
}

func listReportEntries(outputDir string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", outputDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
