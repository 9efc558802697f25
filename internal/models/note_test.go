package models_test

import (
	"strings"
	"testing"

	"notehub/internal/models"
)

// ####################### valid behavior tests
func TestExternalToken_AliasTakesPrecedence(t *testing.T) {
	alias := "features"
	n := models.Note{Alias: &alias, ShortID: "abc123def456"}

	if got := n.ExternalToken(); got != "features" {
		t.Errorf("want alias token features, got %s", got)
		return
	}
}

func TestExternalToken_FallsBackToShortID(t *testing.T) {
	n := models.Note{ShortID: "abc123def456"}

	if got := n.ExternalToken(); got != "abc123def456" {
		t.Errorf("want short id token abc123def456, got %s", got)
		return
	}

	empty := ""
	n.Alias = &empty
	if got := n.ExternalToken(); got != "abc123def456" {
		t.Errorf("want short id token for empty alias, got %s", got)
		return
	}
}

func TestDecodeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Note", "My Note"},
		{"", "Untitled"},
	}

	for _, tt := range tests {
		if got := models.DecodeTitle(tt.input); got != tt.want {
			t.Errorf("DecodeTitle(%q) = %q; want %q", tt.input, got, tt.want)
			return
		}
	}
}

func TestGenerateWebTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "NoteHub - Collaborative markdown notes"},
		{"Untitled", "NoteHub - Collaborative markdown notes"},
		{"Meeting Notes", "Meeting Notes - NoteHub"},
		{"Meeting Notes - NoteHub", "Meeting Notes - NoteHub"},
	}

	for _, tt := range tests {
		if got := models.GenerateWebTitle(tt.input); got != tt.want {
			t.Errorf("GenerateWebTitle(%q) = %q; want %q", tt.input, got, tt.want)
			return
		}
	}
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		markdown string
		want     string
	}{
		{"# Hello World\nbody", "Hello World"},
		{"intro line\n\n# Late Heading\nbody", "Late Heading"},
		{"  # Indented Heading\nbody", "Indented Heading"},
		{"## Subheading only\nbody", "Untitled"},
		{"no headings here", "Untitled"},
		{"", "Untitled"},
	}

	for _, tt := range tests {
		if got := models.ParseTitle(tt.markdown); got != tt.want {
			t.Errorf("ParseTitle(%q) = %q; want %q", tt.markdown, got, tt.want)
			return
		}
	}
}

func TestGenerateDescription(t *testing.T) {
	got := models.GenerateDescription("# Heading\nSome *bold* text with `code`")

	if strings.ContainsAny(got, "#*`\n") {
		t.Errorf("want markdown syntax stripped, got %q", got)
		return
	}

	if !strings.Contains(got, "Some bold text with code") {
		t.Errorf("want flattened text, got %q", got)
		return
	}
}

func TestGenerateDescription_TruncatesLongContent(t *testing.T) {
	got := models.GenerateDescription(strings.Repeat("ä", 250))

	runes := []rune(got)
	if len(runes) != 101 {
		t.Errorf("want 100 runes plus ellipsis, got %d runes", len(runes))
		return
	}

	if runes[len(runes)-1] != '…' {
		t.Errorf("want trailing ellipsis, got %q", string(runes[len(runes)-1]))
		return
	}
}
