package formatters

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// WebsiteLabel shortens a URL to its registrable domain for display
// ("https://www.foo.example.com/x" -> "example.com").
func WebsiteLabel(raw string) string {
	us := strings.TrimSpace(raw)
	if us == "" {
		return ""
	}
	// ensure scheme present for parsing
	candidate := us
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return us
	}
	host := parsed.Hostname()
	if host == "" {
		return us
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// Href returns a URL usable in a link, adding https:// when the scheme is missing.
func Href(raw string) string {
	us := strings.TrimSpace(raw)
	if us == "" || strings.HasPrefix(us, "http://") || strings.HasPrefix(us, "https://") {
		return us
	}
	return "https://" + us
}
