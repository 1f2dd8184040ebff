// Package cli implements the interactive presentation layer. It renders
// problems and streak reports, and drives the review session. All
// scheduling decisions live in the review coordinator; this package only
// asks questions and prints answers.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// styles used across the interactive surfaces.
var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	faint  = color.New(color.Faint)
)

// readLine reads one line of input, trimmed of surrounding whitespace.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// prompt prints a label and reads the response on the same line.
func prompt(w io.Writer, r *bufio.Reader, label string) (string, error) {
	fmt.Fprintf(w, "%s: ", label)
	return readLine(r)
}
