package models

import (
	"encoding/json"
	"sort"
)

// Storage keys in the kv collection.
const (
	BlogKey       = "blog:posts"
	MusicKey      = "music:posts"
	WorkKey       = "work:posts"
	AboutPhotoKey = "about:photo_url"
)

// MusicTags is the allowed tag set for music posts. The first entry is
// the default; unknown stored values coerce to it on read.
var MusicTags = []string{"Voc.", "Wr.", "Aud."}

type BlogPost struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ImageUrls []string `json:"imageUrls"`
	CreatedAt string   `json:"createdAt"`
}

type MusicPost struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ImageUrls []string `json:"imageUrls"`
	VideoUrls []string `json:"videoUrls"`
	Tag       string   `json:"tag"`
	CreatedAt string   `json:"createdAt"`
}

type WorkPost struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ImageUrls []string `json:"imageUrls"`
	VideoUrls []string `json:"videoUrls"`
	AudioUrls []string `json:"audioUrls"`
	PdfUrls   []string `json:"pdfUrls"`
	ZipUrls   []string `json:"zipUrls"`
	CreatedAt string   `json:"createdAt"`
}

// rawPost is the loosely-typed shape stored records decode into before
// validation. Pointer and RawMessage fields distinguish missing and
// wrongly-typed values so malformed records can be pruned per field.
type rawPost struct {
	ID        *string         `json:"id"`
	Slug      *string         `json:"slug"`
	Title     *string         `json:"title"`
	Content   *string         `json:"content"`
	ImageUrls json.RawMessage `json:"imageUrls"`
	VideoUrls json.RawMessage `json:"videoUrls"`
	AudioUrls json.RawMessage `json:"audioUrls"`
	PdfUrls   json.RawMessage `json:"pdfUrls"`
	ZipUrls   json.RawMessage `json:"zipUrls"`
	Tag       json.RawMessage `json:"tag"`
	CreatedAt *string         `json:"createdAt"`
}

// valid checks the required fields shared by every post type: string
// id/slug/title/content/createdAt and an imageUrls array.
func (p *rawPost) valid() bool {
	if p.ID == nil || p.Slug == nil || p.Title == nil || p.Content == nil || p.CreatedAt == nil {
		return false
	}
	_, ok := stringList(p.ImageUrls)
	return ok
}

// stringList decodes a JSON array, keeping only string elements.
// Missing, null, or non-array values report ok=false.
func stringList(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// optionalStringList is stringList with missing/invalid normalized to
// an empty slice.
func optionalStringList(raw json.RawMessage) []string {
	list, ok := stringList(raw)
	if !ok {
		return []string{}
	}
	return list
}

// NormalizeTag coerces a stored tag into the MusicTags set, defaulting
// to the first entry.
func NormalizeTag(tag string) string {
	for _, t := range MusicTags {
		if tag == t {
			return tag
		}
	}
	return MusicTags[0]
}

// decodeRaw unmarshals a stored list into per-record raw messages. Any
// value that is not a JSON array yields nil.
func decodeRaw(data json.RawMessage) []json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// ParseBlogPosts validates a stored blog list, silently dropping
// malformed records. It never fails: garbage in, empty list out.
func ParseBlogPosts(data json.RawMessage) []BlogPost {
	items := decodeRaw(data)
	posts := make([]BlogPost, 0, len(items))
	for _, item := range items {
		var raw rawPost
		if err := json.Unmarshal(item, &raw); err != nil || !raw.valid() {
			continue
		}
		images, _ := stringList(raw.ImageUrls)
		posts = append(posts, BlogPost{
			ID:        *raw.ID,
			Slug:      *raw.Slug,
			Title:     *raw.Title,
			Content:   *raw.Content,
			ImageUrls: images,
			CreatedAt: *raw.CreatedAt,
		})
	}
	return posts
}

func ParseMusicPosts(data json.RawMessage) []MusicPost {
	items := decodeRaw(data)
	posts := make([]MusicPost, 0, len(items))
	for _, item := range items {
		var raw rawPost
		if err := json.Unmarshal(item, &raw); err != nil || !raw.valid() {
			continue
		}
		images, _ := stringList(raw.ImageUrls)
		// A wrongly-typed tag coerces to the default rather than
		// invalidating the record.
		var tag string
		if len(raw.Tag) > 0 {
			_ = json.Unmarshal(raw.Tag, &tag)
		}
		posts = append(posts, MusicPost{
			ID:        *raw.ID,
			Slug:      *raw.Slug,
			Title:     *raw.Title,
			Content:   *raw.Content,
			ImageUrls: images,
			VideoUrls: optionalStringList(raw.VideoUrls),
			Tag:       NormalizeTag(tag),
			CreatedAt: *raw.CreatedAt,
		})
	}
	return posts
}

func ParseWorkPosts(data json.RawMessage) []WorkPost {
	items := decodeRaw(data)
	posts := make([]WorkPost, 0, len(items))
	for _, item := range items {
		var raw rawPost
		if err := json.Unmarshal(item, &raw); err != nil || !raw.valid() {
			continue
		}
		images, _ := stringList(raw.ImageUrls)
		posts = append(posts, WorkPost{
			ID:        *raw.ID,
			Slug:      *raw.Slug,
			Title:     *raw.Title,
			Content:   *raw.Content,
			ImageUrls: images,
			VideoUrls: optionalStringList(raw.VideoUrls),
			AudioUrls: optionalStringList(raw.AudioUrls),
			PdfUrls:   optionalStringList(raw.PdfUrls),
			ZipUrls:   optionalStringList(raw.ZipUrls),
			CreatedAt: *raw.CreatedAt,
		})
	}
	return posts
}

// Lists are always served newest first. CreatedAt is RFC 3339 UTC, so
// string order is time order.

func SortBlogPosts(posts []BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt > posts[j].CreatedAt })
}

func SortMusicPosts(posts []MusicPost) {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt > posts[j].CreatedAt })
}

func SortWorkPosts(posts []WorkPost) {
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].CreatedAt > posts[j].CreatedAt })
}
