package instagram

import (
	"cmp"
	"encoding/json"
	"net/url"
	"regexp"
)

// inlineMediaPattern matches JSON-style "video_url" / "display_url"
// fragments embedded in script blocks, values still carrying their JSON
// string escapes.
var inlineMediaPattern = regexp.MustCompile(`"(video_url|display_url)":"(https?:\\/\\/[^"]+)"`)

// Assembler turns extracted tags plus the raw page into an ordered,
// de-duplicated media list.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Run builds the media list: the primary OG/Twitter video or image first,
// then inline fragment matches in document order. De-duplication is by exact
// URL against everything inserted so far; candidates that are not absolute
// URLs are skipped.
func (a *Assembler) Run(tags Tags, data []byte) []MediaItem {
	items := make([]MediaItem, 0, 4)
	seen := make(map[string]bool)

	primaryVideo := cmp.Or(tags["og:video"], tags["twitter:player:stream"])
	primaryImage := cmp.Or(tags["og:image"], tags["twitter:image"])

	add := func(item MediaItem) {
		if item.URL == "" || seen[item.URL] || !isAbsoluteURL(item.URL) {
			return
		}
		seen[item.URL] = true
		items = append(items, item)
	}

	if primaryVideo != "" {
		add(MediaItem{Type: MediaTypeVideo, URL: primaryVideo, Thumbnail: primaryImage})
	} else if primaryImage != "" {
		add(MediaItem{Type: MediaTypeImage, URL: primaryImage, Thumbnail: primaryImage})
	}

	for _, match := range inlineMediaPattern.FindAllSubmatch(data, -1) {
		decoded, err := decodeJSONString(string(match[2]))
		if err != nil {
			continue
		}

		switch string(match[1]) {
		case "video_url":
			add(MediaItem{Type: MediaTypeVideo, URL: decoded, Thumbnail: primaryImage})
		case "display_url":
			add(MediaItem{Type: MediaTypeImage, URL: decoded, Thumbnail: decoded})
		}
	}

	return items
}

// decodeJSONString resolves JSON string escapes (`\/`, `\u0026`, ...) in a
// raw fragment value.
func decodeJSONString(raw string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(`"`+raw+`"`), &s); err != nil {
		return "", err
	}
	return s, nil
}

func isAbsoluteURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
