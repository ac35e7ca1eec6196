package instagram

import (
	"context"
	"fmt"
)

// PageFetcher retrieves the raw markup of a post page.
type PageFetcher interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

var _ PageFetcher = (*Fetcher)(nil)

// Inspector runs the full inspection pipeline: validate the post URL, fetch
// the page, extract meta tags, assemble the media list. Stateless between
// calls; safe for concurrent use.
type Inspector struct {
	fetcher   PageFetcher
	extractor *MetaExtractor
	assembler *Assembler
}

func NewInspector(fetcher PageFetcher) *Inspector {
	return &Inspector{
		fetcher:   fetcher,
		extractor: NewMetaExtractor(),
		assembler: NewAssembler(),
	}
}

// Run inspects the post at rawURL and returns its media items. Failures are
// *Error values carrying the HTTP status the caller should answer with.
func (i *Inspector) Run(ctx context.Context, rawURL string) ([]MediaItem, error) {
	if err := ValidatePostURL(rawURL); err != nil {
		return nil, err
	}

	data, err := i.fetcher.Run(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	tags, err := i.extractor.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract tags: %w", err)
	}

	items := i.assembler.Run(tags, data)
	if len(items) == 0 {
		return nil, ErrNoMedia
	}

	return items, nil
}
