// Package editor launches an external text editor for long free-text
// fields. The rest of the application treats it as an opaque
// string-in/string-out function: either the edited text comes back, or
// the edit was cancelled and the previous text stands.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrCancelled is returned when the editor exits with a failure status;
// the caller should keep the text it already had.
var ErrCancelled = errors.New("edit cancelled")

// codeExtensions maps language names to temp-file extensions so editors
// pick up syntax highlighting.
var codeExtensions = map[string]string{
	"go":         ".go",
	"python":     ".py",
	"java":       ".java",
	"c":          ".c",
	"cpp":        ".cpp",
	"javascript": ".js",
	"typescript": ".ts",
	"rust":       ".rs",
	"ruby":       ".rb",
	"kotlin":     ".kt",
	"swift":      ".swift",
}

// Editor launches an external editor command on temp files.
type Editor struct {
	command string
}

// New creates an Editor. An empty command falls back to $EDITOR and then
// to a platform default (nano, or notepad on Windows).
func New(command string) *Editor {
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if command == "" {
		if runtime.GOOS == "windows" {
			command = "notepad"
		} else {
			command = "nano"
		}
	}
	return &Editor{command: command}
}

// EditApproach edits markdown-formatted approach notes.
func (e *Editor) EditApproach(initial string) (string, error) {
	return e.edit(initial, ".md")
}

// EditCode edits code with an extension matching the language when known.
func (e *Editor) EditCode(initial, language string) (string, error) {
	ext, ok := codeExtensions[strings.ToLower(language)]
	if !ok {
		ext = ".txt"
	}
	return e.edit(initial, ext)
}

// edit writes initial to a temp file, runs the editor on it, and returns
// the file's content afterwards.
func (e *Editor) edit(initial, extension string) (string, error) {
	file, err := os.CreateTemp("", "dsarecall-*"+extension)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.WriteString(initial); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	parts := strings.Fields(e.command)
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("run editor %q: %w", e.command, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return string(edited), nil
}
