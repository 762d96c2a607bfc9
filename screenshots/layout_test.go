package screenshots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyDirectoryStructure(t *testing.T) {
	outputDir := t.TempDir()
	nested := filepath.Join(outputDir, DeviceScreenshotDir)
	for _, test := range []string{"testA", "testB"} {
		require.NoError(t, os.MkdirAll(filepath.Join(nested, test), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, test, "shot.png"), []byte(test), 0o644))
	}

	require.NoError(t, simplifyDirectoryStructure(outputDir, DeviceScreenshotDir))

	assert.DirExists(t, filepath.Join(outputDir, "testA"))
	assert.DirExists(t, filepath.Join(outputDir, "testB"))
	assert.FileExists(t, filepath.Join(outputDir, "testB", "shot.png"))
	assert.NoDirExists(t, nested)
}

func TestSimplifyDirectoryStructure_MissingIntermediate(t *testing.T) {
	outputDir := t.TempDir()

	require.NoError(t, simplifyDirectoryStructure(outputDir, DeviceScreenshotDir))

	entries, err := listReportEntries(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSimplifyDirectoryStructure_EmptyIntermediate(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outputDir, DeviceScreenshotDir), 0o755))

	require.NoError(t, simplifyDirectoryStructure(outputDir, DeviceScreenshotDir))

	assert.NoDirExists(t, filepath.Join(outputDir, DeviceScreenshotDir))
}

func TestListReportEntries_Sorted(t *testing.T) {
	outputDir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, os.MkdirAll(filepath.Join(outputDir, name), 0o755))
	}

	entries, err := listReportEntries(outputDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, entries)
}
