package instagram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/singgihasu/gramlens/app/config"
)

// Fetcher retrieves post pages over HTTP using a browser-like request
// profile. One GET per inspection, no retries; redirect handling is the
// client default.
type Fetcher struct {
	httpClient *http.Client
	settings   *config.Settings
}

func NewFetcher(httpClient *http.Client, settings *config.Settings) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		settings:   settings,
	}
}

// Run fetches the page at url and returns the raw body. Transport failures
// map to a gateway error, non-2xx responses carry the upstream status code.
func (f *Fetcher) Run(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.settings.GetFetchTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.settings.UserAgent)
	req.Header.Set("Accept-Language", f.settings.AcceptLanguage)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, newFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newUpstreamError(resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.settings.GetMaxBodySize()))
	if err != nil {
		return nil, newFetchError(err)
	}

	return data, nil
}
