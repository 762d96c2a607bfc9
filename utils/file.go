package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/otiai10/copy"
)

// ResetDir removes dir and everything below it, then recreates it empty.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return nil
}

// MoveEntry moves a file or directory from src to dst. When a plain rename is
// not possible, for example across filesystems, it copies and then removes src.
func MoveEntry(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	if _, statErr := os.Lstat(src); statErr != nil {
		return err
	}

	Verbose("Rename %s -> %s failed (%v), copying instead", src, dst, err)
	if err := copy.Copy(src, dst); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return os.RemoveAll(src)
}
