package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/ddr/internal/report"
)

func TestWriteFile(t *testing.T) {
	t.Run("writes content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Final_Client_Report.md")

		require.NoError(t, report.WriteFile(path, "# Report\n"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Report\n", string(data))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.md")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		require.NoError(t, report.WriteFile(path, "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, report.WriteFile(filepath.Join(dir, "out.md"), "content"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.md", entries[0].Name())
	})

	t.Run("missing directory fails without output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.md")

		err := report.WriteFile(path, "content")
		require.Error(t, err)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
