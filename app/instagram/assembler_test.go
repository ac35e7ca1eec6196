package instagram

import (
	"testing"
)

func TestAssemblerPrimaryVideoFirst(t *testing.T) {
	tags := Tags{
		"og:video": "https://cdn.example.com/video.mp4",
		"og:image": "https://cdn.example.com/thumb.jpg",
	}

	items := NewAssembler().Run(tags, nil)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Type != MediaTypeVideo {
		t.Errorf("Expected type video, got '%s'", items[0].Type)
	}
	if items[0].URL != "https://cdn.example.com/video.mp4" {
		t.Errorf("Unexpected URL: %s", items[0].URL)
	}
	if items[0].Thumbnail != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("Unexpected thumbnail: %s", items[0].Thumbnail)
	}
}

func TestAssemblerImageOnly(t *testing.T) {
	tags := Tags{"og:image": "https://cdn.example.com/pic.jpg"}

	items := NewAssembler().Run(tags, nil)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Type != MediaTypeImage {
		t.Errorf("Expected type image, got '%s'", items[0].Type)
	}
	if items[0].URL != "https://cdn.example.com/pic.jpg" {
		t.Errorf("Unexpected URL: %s", items[0].URL)
	}
	// An image is its own thumbnail
	if items[0].Thumbnail != "https://cdn.example.com/pic.jpg" {
		t.Errorf("Unexpected thumbnail: %s", items[0].Thumbnail)
	}
}

func TestAssemblerTwitterFallbacks(t *testing.T) {
	tags := Tags{
		"twitter:player:stream": "https://cdn.example.com/stream.mp4",
		"twitter:image":         "https://cdn.example.com/tw.jpg",
	}

	items := NewAssembler().Run(tags, nil)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Type != MediaTypeVideo {
		t.Errorf("Expected type video, got '%s'", items[0].Type)
	}
	if items[0].URL != "https://cdn.example.com/stream.mp4" {
		t.Errorf("Unexpected URL: %s", items[0].URL)
	}
	if items[0].Thumbnail != "https://cdn.example.com/tw.jpg" {
		t.Errorf("Unexpected thumbnail: %s", items[0].Thumbnail)
	}
}

func TestAssemblerOGBeatsTwitter(t *testing.T) {
	tags := Tags{
		"og:video":              "https://cdn.example.com/og.mp4",
		"twitter:player:stream": "https://cdn.example.com/tw.mp4",
	}

	items := NewAssembler().Run(tags, nil)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].URL != "https://cdn.example.com/og.mp4" {
		t.Errorf("Expected og:video to take priority, got '%s'", items[0].URL)
	}
}

func TestAssemblerInlineVideoAfterPrimary(t *testing.T) {
	tags := Tags{
		"og:video": "https://cdn.example.com/video.mp4",
		"og:image": "https://cdn.example.com/thumb.jpg",
	}
	data := []byte(`<script>{"video_url":"https:\/\/cdn.example.com\/v2.mp4"}</script>`)

	items := NewAssembler().Run(tags, data)

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].URL != "https://cdn.example.com/video.mp4" {
		t.Errorf("Expected primary video first, got '%s'", items[0].URL)
	}
	if items[1].Type != MediaTypeVideo {
		t.Errorf("Expected type video, got '%s'", items[1].Type)
	}
	// Escaped slashes are decoded
	if items[1].URL != "https://cdn.example.com/v2.mp4" {
		t.Errorf("Expected decoded URL, got '%s'", items[1].URL)
	}
	// Inline videos inherit the primary image as thumbnail
	if items[1].Thumbnail != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("Unexpected thumbnail: %s", items[1].Thumbnail)
	}
}

func TestAssemblerInlineDuplicateOfPrimary(t *testing.T) {
	tags := Tags{"og:video": "https://cdn.example.com/video.mp4"}
	data := []byte(`{"video_url":"https:\/\/cdn.example.com\/video.mp4"}`)

	items := NewAssembler().Run(tags, data)

	if len(items) != 1 {
		t.Errorf("Expected duplicate to be dropped, got %d items", len(items))
	}
}

func TestAssemblerDisplayURLDeduplication(t *testing.T) {
	data := []byte(`{"display_url":"https:\/\/cdn.example.com\/pic.jpg"},` +
		`{"display_url":"https:\/\/cdn.example.com\/pic.jpg"}`)

	items := NewAssembler().Run(Tags{}, data)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Type != MediaTypeImage {
		t.Errorf("Expected type image, got '%s'", items[0].Type)
	}
	if items[0].URL != "https://cdn.example.com/pic.jpg" {
		t.Errorf("Unexpected URL: %s", items[0].URL)
	}
	if items[0].Thumbnail != items[0].URL {
		t.Errorf("Expected display_url item to be its own thumbnail, got '%s'", items[0].Thumbnail)
	}
}

func TestAssemblerUnicodeEscapes(t *testing.T) {
	data := []byte(`{"video_url":"https:\/\/cdn.example.com\/v.mp4?a=1\u0026b=2"}`)

	items := NewAssembler().Run(Tags{}, data)

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].URL != "https://cdn.example.com/v.mp4?a=1&b=2" {
		t.Errorf("Expected unicode escape decoded, got '%s'", items[0].URL)
	}
}

func TestAssemblerDocumentOrder(t *testing.T) {
	data := []byte(`{"display_url":"https:\/\/cdn.example.com\/a.jpg"}` +
		`{"video_url":"https:\/\/cdn.example.com\/b.mp4"}` +
		`{"display_url":"https:\/\/cdn.example.com\/c.jpg"}`)

	items := NewAssembler().Run(Tags{}, data)

	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	if items[0].URL != "https://cdn.example.com/a.jpg" ||
		items[1].URL != "https://cdn.example.com/b.mp4" ||
		items[2].URL != "https://cdn.example.com/c.jpg" {
		t.Errorf("Expected document order preserved, got %v", items)
	}
}

func TestAssemblerSkipsInvalidCandidates(t *testing.T) {
	tags := Tags{"og:video": "not a url"}

	items := NewAssembler().Run(tags, nil)

	if len(items) != 0 {
		t.Errorf("Expected invalid candidate to be skipped, got %v", items)
	}
}

func TestAssemblerEmpty(t *testing.T) {
	items := NewAssembler().Run(Tags{}, []byte("<html><body>nothing</body></html>"))

	if len(items) != 0 {
		t.Errorf("Expected no items, got %v", items)
	}
}
