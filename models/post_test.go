package models

import (
	"encoding/json"
	"testing"
)

func blogRecord(id, slug, title, createdAt string) map[string]any {
	return map[string]any{
		"id":        id,
		"slug":      slug,
		"title":     title,
		"content":   "",
		"imageUrls": []string{},
		"createdAt": createdAt,
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestParseBlogPostsPrunesMalformed(t *testing.T) {
	good := blogRecord("post-1", "good", "Good", "2024-01-01T00:00:00Z")
	missingTitle := blogRecord("post-2", "bad", "", "2024-01-02T00:00:00Z")
	delete(missingTitle, "title")
	wrongImageType := blogRecord("post-3", "bad2", "Bad", "2024-01-03T00:00:00Z")
	wrongImageType["imageUrls"] = "not-an-array"

	raw := mustJSON(t, []any{good, missingTitle, wrongImageType, "not an object", 42})
	posts := ParseBlogPosts(raw)
	if len(posts) != 1 {
		t.Fatalf("expected 1 surviving post, got %d", len(posts))
	}
	if posts[0].ID != "post-1" {
		t.Fatalf("wrong survivor: %+v", posts[0])
	}
}

func TestParseBlogPostsGarbageInput(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage("null"), json.RawMessage(`{"not":"a list"}`), json.RawMessage("nonsense")} {
		if posts := ParseBlogPosts(raw); len(posts) != 0 {
			t.Fatalf("garbage %q produced posts: %+v", raw, posts)
		}
	}
}

func TestParseBlogPostsDropsNonStringURLs(t *testing.T) {
	rec := blogRecord("post-1", "p", "P", "2024-01-01T00:00:00Z")
	rec["imageUrls"] = []any{"https://a", 7, nil, "https://b"}
	posts := ParseBlogPosts(mustJSON(t, []any{rec}))
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if len(posts[0].ImageUrls) != 2 || posts[0].ImageUrls[0] != "https://a" || posts[0].ImageUrls[1] != "https://b" {
		t.Fatalf("non-string elements not dropped: %v", posts[0].ImageUrls)
	}
}

func TestParseMusicPostsNormalization(t *testing.T) {
	rec := blogRecord("post-1", "song", "Song", "2024-01-01T00:00:00Z")
	rec["tag"] = "bogus"
	// videoUrls deliberately absent
	posts := ParseMusicPosts(mustJSON(t, []any{rec}))
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Tag != "Voc." {
		t.Fatalf("unknown tag should coerce to Voc., got %q", posts[0].Tag)
	}
	if posts[0].VideoUrls == nil || len(posts[0].VideoUrls) != 0 {
		t.Fatalf("missing videoUrls should normalize to empty, got %#v", posts[0].VideoUrls)
	}
}

func TestParseMusicPostsNonStringTag(t *testing.T) {
	rec := blogRecord("post-1", "song", "Song", "2024-01-01T00:00:00Z")
	rec["tag"] = 7
	posts := ParseMusicPosts(mustJSON(t, []any{rec}))
	if len(posts) != 1 {
		t.Fatalf("wrongly-typed tag should not drop the record, got %d posts", len(posts))
	}
	if posts[0].Tag != "Voc." {
		t.Fatalf("tag = %q, want Voc.", posts[0].Tag)
	}
}

func TestParseMusicPostsKeepsValidTag(t *testing.T) {
	for _, tag := range MusicTags {
		rec := blogRecord("post-1", "song", "Song", "2024-01-01T00:00:00Z")
		rec["tag"] = tag
		posts := ParseMusicPosts(mustJSON(t, []any{rec}))
		if len(posts) != 1 || posts[0].Tag != tag {
			t.Fatalf("valid tag %q not preserved: %+v", tag, posts)
		}
	}
}

func TestParseWorkPostsOptionalArrays(t *testing.T) {
	rec := blogRecord("post-1", "w", "W", "2024-01-01T00:00:00Z")
	rec["pdfUrls"] = []any{"https://p.pdf", false}
	posts := ParseWorkPosts(mustJSON(t, []any{rec}))
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	p := posts[0]
	if len(p.PdfUrls) != 1 || p.PdfUrls[0] != "https://p.pdf" {
		t.Fatalf("pdfUrls wrong: %v", p.PdfUrls)
	}
	for name, urls := range map[string][]string{"video": p.VideoUrls, "audio": p.AudioUrls, "zip": p.ZipUrls} {
		if urls == nil || len(urls) != 0 {
			t.Fatalf("%sUrls should be empty, got %#v", name, urls)
		}
	}
}

func TestSortBlogPostsDescending(t *testing.T) {
	// Stored oldest-first; serving order must be newest-first.
	raw := mustJSON(t, []any{
		blogRecord("post-1", "a", "A", "2024-01-01T00:00:00Z"),
		blogRecord("post-3", "c", "C", "2024-03-01T00:00:00Z"),
		blogRecord("post-2", "b", "B", "2024-02-01T00:00:00Z"),
	})
	posts := ParseBlogPosts(raw)
	SortBlogPosts(posts)
	want := []string{"post-3", "post-2", "post-1"}
	for i, id := range want {
		if posts[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s", i, posts[i].ID, id)
		}
	}
}

func TestNormalizeTag(t *testing.T) {
	if got := NormalizeTag("Wr."); got != "Wr." {
		t.Errorf("valid tag changed: %q", got)
	}
	if got := NormalizeTag(""); got != "Voc." {
		t.Errorf("empty tag: got %q, want Voc.", got)
	}
	if got := NormalizeTag("bogus"); got != "Voc." {
		t.Errorf("bogus tag: got %q, want Voc.", got)
	}
}
