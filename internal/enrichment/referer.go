package enrichment

import (
	"net/url"
	"strings"
)

// RefererClassifier classifies traffic sources from referer URLs.
type RefererClassifier struct {
	searchEngines []string
	socialMedia   []string
	email         []string
}

func NewRefererClassifier() *RefererClassifier {
	return &RefererClassifier{
		searchEngines: []string{
			"google.",
			"bing.com",
			"yahoo.com",
			"duckduckgo.com",
			"baidu.com",
			"yandex.",
			"ecosia.org",
		},
		socialMedia: []string{
			"facebook.com",
			"t.co",
			"twitter.com",
			"x.com",
			"instagram.com",
			"linkedin.com",
			"lnkd.in",
			"pinterest.com",
			"reddit.com",
			"tiktok.com",
			"youtube.com",
			"threads.net",
		},
		email: []string{
			"mail.google.com",
			"outlook.live.com",
			"mail.yahoo.com",
		},
	}
}

// ClassifySource returns "Direct", "Email", "Search", "Social" or "Referral".
func (r *RefererClassifier) ClassifySource(refererStr string) string {
	if refererStr == "" {
		return "Direct"
	}

	parsed, err := url.Parse(refererStr)
	if err != nil || parsed.Hostname() == "" {
		return "Direct"
	}

	hostname := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")

	// Webmail hosts share domains with search engines, so they go first.
	if matchesAny(hostname, r.email) {
		return "Email"
	}
	if matchesAny(hostname, r.searchEngines) {
		return "Search"
	}
	if matchesAny(hostname, r.socialMedia) {
		return "Social"
	}
	return "Referral"
}

// matchesAny reports whether hostname is one of domains or a subdomain of one.
// Entries ending in "." match any top-level domain.
func matchesAny(hostname string, domains []string) bool {
	for _, d := range domains {
		if strings.HasSuffix(d, ".") {
			if strings.HasPrefix(hostname, d) || strings.Contains(hostname, "."+d) {
				return true
			}
			continue
		}
		if hostname == d || strings.HasSuffix(hostname, "."+d) {
			return true
		}
	}
	return false
}
