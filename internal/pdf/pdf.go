// Package pdf renders markdown reports to PDF.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// RenderFile converts a markdown file to a PDF next to it and returns the
// PDF path.
func RenderFile(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", markdownPath, err)
	}
	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("render %s: %w", markdownPath, err)
	}

	abs, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return abs, nil
}
