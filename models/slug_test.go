package models

import (
	"reflect"
	"strings"
	"testing"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "AI Basics", "ai-basics"},
		{"separator runs collapse", "Getting Started!! 2024", "getting-started-2024"},
		{"leading and trailing separators trimmed", "---Hello World!!!", "hello-world"},
		{"slash and space derive the same", "A/B", "a-b"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"mixed case", "Edge AI: Bringing Intelligence to the Edge", "edge-ai-bringing-intelligence-to-the-edge"},
		{"only separators", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSlug(tt.title)
			if got != tt.want {
				t.Errorf("DeriveSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if got != strings.ToLower(got) {
				t.Errorf("DeriveSlug(%q) = %q, not lowercase", tt.title, got)
			}
			if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
				t.Errorf("DeriveSlug(%q) = %q, has leading/trailing hyphen", tt.title, got)
			}
			if strings.Contains(got, "--") {
				t.Errorf("DeriveSlug(%q) = %q, has adjacent hyphens", tt.title, got)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Go ", "AI", "go", "", "machine-learning"})
	want := []string{"go", "ai", "machine-learning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, want %v", got, want)
	}
}

func TestExcerpt(t *testing.T) {
	short := strings.Repeat("a", 150)
	if got := Excerpt(short); got != short {
		t.Errorf("content of exactly 150 chars should be returned untouched, got %d chars", len(got))
	}

	long := strings.Repeat("a", 151)
	got := Excerpt(long)
	if got != strings.Repeat("a", 150)+"..." {
		t.Errorf("Excerpt of 151 chars = %d chars, want 150 + ellipsis", len(got))
	}
}

func TestExcerpt_CountsRunes(t *testing.T) {
	// 100 characters but 200 bytes; well under the 150-character limit
	short := strings.Repeat("é", 100)
	if got := Excerpt(short); got != short {
		t.Errorf("multibyte content under the limit should be returned untouched, got %q", got)
	}

	long := strings.Repeat("日", 151)
	got := Excerpt(long)
	if want := strings.Repeat("日", 150) + "..."; got != want {
		t.Errorf("truncation split the content at the wrong character: got %d runes", len([]rune(got)))
	}
}
