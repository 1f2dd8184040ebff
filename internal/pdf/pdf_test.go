package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFile(t *testing.T) {
	t.Run("rejects a non-markdown input", func(t *testing.T) {
		_, err := RenderFile("report.txt")
		assert.ErrorContains(t, err, ".md extension")
	})

	t.Run("errors on a missing input file", func(t *testing.T) {
		_, err := RenderFile(filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})

	t.Run("writes the pdf next to the markdown file", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := filepath.Join(dir, "report.md")
		content := "# Report\n\nSome *markdown* content.\n"
		require.NoError(t, os.WriteFile(mdPath, []byte(content), 0o644))

		pdfPath, err := RenderFile(mdPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "report.pdf"), pdfPath)

		info, err := os.Stat(pdfPath)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})
}
