package models

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSlugFromTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Café *World*  ", "caf-world"},
		{"My  First   Post", "my-first-post"},
		{"UPPER", "upper"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SlugFromTitle(tc.title); got != tc.want {
			t.Errorf("SlugFromTitle(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestResolveSlug(t *testing.T) {
	// Client slug wins when non-empty and is normalized but not
	// stripped.
	if got := ResolveSlug(" My Custom Slug ", "Ignored Title"); got != "my-custom-slug" {
		t.Errorf("client slug: got %q", got)
	}
	if got := ResolveSlug("", "Fallback Title"); got != "fallback-title" {
		t.Errorf("fallback to title: got %q", got)
	}
	if got := ResolveSlug("   ", "Fallback Title"); got != "fallback-title" {
		t.Errorf("whitespace-only client slug should fall back: got %q", got)
	}
}

func TestNewPostID(t *testing.T) {
	id := NewPostID()
	if !regexp.MustCompile(`^post-\d+-[0-9a-f]{8}$`).MatchString(id) {
		t.Fatalf("unexpected id shape: %q", id)
	}
	if NewPostID() == id && NewPostID() == id {
		t.Fatalf("ids are not varying: %q", id)
	}
}

func TestNow(t *testing.T) {
	stamp := Now()
	parsed, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		t.Fatalf("Now() is not RFC 3339: %q (%v)", stamp, err)
	}
	if d := time.Since(parsed); d < -time.Minute || d > time.Minute {
		t.Fatalf("Now() is not close to now: %q", stamp)
	}
	if !strings.HasSuffix(stamp, "Z") {
		t.Fatalf("Now() should be UTC: %q", stamp)
	}
}
