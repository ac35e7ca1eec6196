package instagram

import (
	"net/url"
	"regexp"
)

// postURLPattern matches Instagram post, reel, and IGTV URLs. Anchored at the
// start only, so trailing query parameters or extra path segments after the
// post identifier are tolerated.
var postURLPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?instagram\.com/(p|reel|reels|tv)/[A-Za-z0-9_-]+/?`)

// ValidatePostURL checks that rawURL is an absolute HTTP(S) URL pointing at
// an Instagram post, reel, or IGTV page. Returns ErrInvalidURL otherwise.
func ValidatePostURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	if u.Host == "" {
		return ErrInvalidURL
	}

	if !postURLPattern.MatchString(rawURL) {
		return ErrInvalidURL
	}

	return nil
}
