package instagram

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MetaExtractor pulls Open Graph and Twitter card tags out of a post page.
type MetaExtractor struct{}

func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// Run parses the document and collects meta tag keys and values. Keys are
// lower-cased, entity-encoded values are decoded by the parser. All
// property-sourced tags are collected before name-sourced ones, so a name
// tag overwrites a property tag with the same key; within each pass the last
// occurrence in document order wins. Tags with an empty key or content are
// skipped.
func (e *MetaExtractor) Run(data []byte) (Tags, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	tags := make(Tags)

	doc.Find("meta[property][content]").Each(func(i int, s *goquery.Selection) {
		key, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if key == "" || content == "" {
			return
		}
		tags[strings.ToLower(key)] = content
	})

	doc.Find("meta[name][content]").Each(func(i int, s *goquery.Selection) {
		key, _ := s.Attr("name")
		content, _ := s.Attr("content")
		if key == "" || content == "" {
			return
		}
		tags[strings.ToLower(key)] = content
	})

	return tags, nil
}
