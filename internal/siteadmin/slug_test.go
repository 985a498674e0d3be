package siteadmin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "Hello World", "hello-world"},
		{"Lowercases", "GoLang Tips", "golang-tips"},
		{"StripsSpecialCharacters", "What's New in Go 1.24?!", "whats-new-in-go-124"},
		{"CollapsesDashes", "a -- b", "a-b"},
		{"CollapsesWhitespace", "a   b\tc", "a-b-c"},
		{"TrimsEdgeDashes", " -edge case- ", "edge-case"},
		{"KeepsDigits", "Top 10 Posts", "top-10-posts"},
		{"DropsNonASCII", "Café Münch", "caf-mnch"},
		{"Empty", "", ""},
		{"OnlySpecials", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Run("StripsHTMLTags", func(t *testing.T) {
		got := Excerpt("<p>Hello <strong>world</strong></p>")
		assert.Equal(t, "Hello world", got)
	})

	t.Run("ShortContentReturnedWhole", func(t *testing.T) {
		got := Excerpt("short text")
		assert.Equal(t, "short text", got)
	})

	t.Run("LongContentTruncatedWithEllipsis", func(t *testing.T) {
		content := strings.Repeat("a", 200)
		got := Excerpt(content)
		assert.Equal(t, strings.Repeat("a", excerptLength)+"...", got)
	})

	t.Run("TruncatesByRunesNotBytes", func(t *testing.T) {
		content := strings.Repeat("я", 200)
		got := Excerpt(content)
		assert.Equal(t, strings.Repeat("я", excerptLength)+"...", got)
	})

	t.Run("ExactBoundaryHasNoEllipsis", func(t *testing.T) {
		content := strings.Repeat("b", excerptLength)
		assert.Equal(t, content, Excerpt(content))
	})

	t.Run("TrimsSurroundingWhitespace", func(t *testing.T) {
		got := Excerpt("  <div>text</div>  ")
		assert.Equal(t, "text", got)
	})
}
