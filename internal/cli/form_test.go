package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemForm_PromptTitle(t *testing.T) {
	t.Run("accepts a non-empty title", func(t *testing.T) {
		var out bytes.Buffer
		f := NewProblemForm(strings.NewReader("Two Sum\n"), &out)

		title, err := f.PromptTitle("")
		require.NoError(t, err)
		assert.Equal(t, "Two Sum", title)
		assert.Contains(t, out.String(), "Title: ")
	})

	t.Run("re-prompts while the title is empty", func(t *testing.T) {
		var out bytes.Buffer
		f := NewProblemForm(strings.NewReader("\n  \nTwo Sum\n"), &out)

		title, err := f.PromptTitle("")
		require.NoError(t, err)
		assert.Equal(t, "Two Sum", title)
		assert.Contains(t, out.String(), "A title is required.")
	})

	t.Run("empty input keeps the current title", func(t *testing.T) {
		var out bytes.Buffer
		f := NewProblemForm(strings.NewReader("\n"), &out)

		title, err := f.PromptTitle("Two Sum")
		require.NoError(t, err)
		assert.Equal(t, "Two Sum", title)
		assert.Contains(t, out.String(), "Title [Two Sum]: ")
	})
}

func TestProblemForm_PromptLink(t *testing.T) {
	t.Run("accepts a URL", func(t *testing.T) {
		f := NewProblemForm(strings.NewReader("https://leetcode.com/problems/two-sum\n"), &bytes.Buffer{})

		link, err := f.PromptLink("")
		require.NoError(t, err)
		assert.Equal(t, "https://leetcode.com/problems/two-sum", link)
	})

	t.Run("empty input is allowed", func(t *testing.T) {
		f := NewProblemForm(strings.NewReader("\n"), &bytes.Buffer{})

		link, err := f.PromptLink("")
		require.NoError(t, err)
		assert.Empty(t, link)
	})

	t.Run("empty input keeps the current link", func(t *testing.T) {
		f := NewProblemForm(strings.NewReader("\n"), &bytes.Buffer{})

		link, err := f.PromptLink("https://example.com/old")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/old", link)
	})

	t.Run("re-prompts on a malformed URL", func(t *testing.T) {
		var out bytes.Buffer
		f := NewProblemForm(strings.NewReader("not a url\nhttps://example.com\n"), &out)

		link, err := f.PromptLink("")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", link)
		assert.Contains(t, out.String(), "That does not look like a URL.")
	})
}

func TestProblemForm_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "yes\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input)+" input", func(t *testing.T) {
			var out bytes.Buffer
			f := NewProblemForm(strings.NewReader(tt.input), &out)

			got, err := f.Confirm("Delete problem 1?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Delete problem 1? [y/N]: ")
		})
	}
}
