package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]+`)
)

// SlugFromTitle derives a URL slug: trim, lowercase, whitespace runs
// to single hyphens, then strip everything outside [a-z0-9-].
func SlugFromTitle(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}

// ResolveSlug prefers a non-empty client-supplied slug (normalized but
// not stripped, matching the site's historical behavior) and falls
// back to deriving one from the title.
func ResolveSlug(clientSlug, title string) string {
	if s := strings.TrimSpace(clientSlug); s != "" {
		return strings.ToLower(whitespaceRun.ReplaceAllString(s, "-"))
	}
	return SlugFromTitle(title)
}

// NewPostID returns "post-<unix-ms>-<random hex>". Uniqueness is not
// cryptographically guaranteed; collisions are negligible at
// human-authored posting rates.
func NewPostID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken; fall back
		// to the timestamp alone rather than aborting a post.
		return fmt.Sprintf("post-%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("post-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}

// Now stamps createdAt values: RFC 3339 in UTC.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
