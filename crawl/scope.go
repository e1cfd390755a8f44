package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/sitecrawl"
)

// ParseBaseURL validates a crawl's starting URL and returns its canonical form.
// The URL must be absolute, use http or https, and name a host.
// The fragment is dropped and an empty path becomes "/".
func ParseBaseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "invalid base URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "base URL %q has no host", rawURL)
	}
	if !isHTTPScheme(u.Scheme) {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "base URL %q must use http or https", rawURL)
	}
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

// Scope decides which discovered links belong to a crawl.
// A link is in scope when it uses http or https and its host,
// including any port, equals the base URL's host.
type Scope struct {
	host string
}

// NewScope returns the scope of a crawl started at base.
func NewScope(base *url.URL) Scope {
	return Scope{host: base.Host}
}

// Host returns the network location the crawl is limited to.
func (s Scope) Host() string {
	return s.host
}

// Resolve resolves href against the URL of the page it was found on and
// reports whether the result is in scope. The returned URL has no fragment,
// so links that differ only by fragment resolve to the same string.
func (s Scope) Resolve(page *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	resolved := page.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawFragment = ""

	if !isHTTPScheme(resolved.Scheme) || resolved.Host != s.host {
		return "", false
	}
	return resolved.String(), true
}

func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
