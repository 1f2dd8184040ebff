package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive the editor through sh")
	}
}

// scriptEditor returns an editor command that appends a line to the
// edited file, standing in for an interactive editor.
func scriptEditor(t *testing.T) string {
	t.Helper()
	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	content := "#!/bin/sh\necho 'edited line' >> \"$1\"\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))
	return "sh " + script
}

func TestEditor_EditApproach(t *testing.T) {
	requireShell(t)

	e := New(scriptEditor(t))
	got, err := e.EditApproach("original notes\n")
	require.NoError(t, err)
	assert.Equal(t, "original notes\nedited line\n", got)
}

func TestEditor_EditCode_ExtensionByLanguage(t *testing.T) {
	requireShell(t)

	// Record the filename the editor was invoked with.
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor.sh")
	nameFile := filepath.Join(dir, "seen-name")
	content := "#!/bin/sh\necho \"$1\" > " + nameFile + "\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	tests := []struct {
		language string
		wantExt  string
	}{
		{language: "go", wantExt: ".go"},
		{language: "Python", wantExt: ".py"},
		{language: "brainfuck", wantExt: ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			e := New("sh " + script)
			_, err := e.EditCode("x = 1", tt.language)
			require.NoError(t, err)

			seen, err := os.ReadFile(nameFile)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, filepath.Ext(string(seen[:len(seen)-1])))
		})
	}
}

func TestEditor_CancelledOnNonZeroExit(t *testing.T) {
	requireShell(t)

	e := New("false")
	_, err := e.EditApproach("keep me")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestEditor_MissingCommand(t *testing.T) {
	e := New("definitely-not-an-editor-binary")
	_, err := e.EditApproach("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestNew_FallsBackToEnvironment(t *testing.T) {
	t.Setenv("EDITOR", "vi -u NONE")
	e := New("")
	assert.Equal(t, "vi -u NONE", e.command)
}

func TestNew_DefaultWithoutEnvironment(t *testing.T) {
	t.Setenv("EDITOR", "")
	e := New("")
	if runtime.GOOS == "windows" {
		assert.Equal(t, "notepad", e.command)
	} else {
		assert.Equal(t, "nano", e.command)
	}
}
