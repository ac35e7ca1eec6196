package instagram

// Media item types surfaced to clients.

const (
	MediaTypeVideo = "video"
	MediaTypeImage = "image"
)

// MediaItem is a single playable or viewable resource extracted from a post
// page. Thumbnail is omitted when no preview image is known.
type MediaItem struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Tags maps lower-cased meta tag keys (taken from either a "property" or a
// "name" attribute) to their decoded content values. Built fresh per
// inspection and discarded afterwards.
type Tags map[string]string
