package enrichment

import (
	"testing"

	"link-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	iphoneSafariUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	ipadUA          = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

type staticCountries map[string]string

func (s staticCountries) ResolveCountry(ip string) string {
	if c, ok := s[ip]; ok {
		return c
	}
	return Unknown
}

func TestDeviceDetector_Detect(t *testing.T) {
	d := NewDeviceDetector()

	tests := []struct {
		name     string
		ua       string
		wantType string
	}{
		{name: "desktop chrome", ua: chromeDesktopUA, wantType: "Desktop"},
		{name: "iphone", ua: iphoneSafariUA, wantType: "Mobile"},
		{name: "ipad", ua: ipadUA, wantType: "Tablet"},
		{name: "googlebot", ua: googlebotUA, wantType: "Bot"},
		{name: "empty", ua: "", wantType: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, d.Detect(tt.ua).Type)
		})
	}
}

func TestDeviceDetector_Detect_BrowserAndOS(t *testing.T) {
	device := NewDeviceDetector().Detect(chromeDesktopUA)

	assert.Equal(t, "Chrome", device.Browser)
	assert.Equal(t, "Windows", device.OS)
}

func TestRefererClassifier_ClassifySource(t *testing.T) {
	r := NewRefererClassifier()

	tests := []struct {
		referer string
		want    string
	}{
		{referer: "", want: "Direct"},
		{referer: "not a url", want: "Direct"},
		{referer: "https://www.google.com/search?q=x", want: "Search"},
		{referer: "https://www.google.co.uk/", want: "Search"},
		{referer: "https://duckduckgo.com/", want: "Search"},
		{referer: "https://mail.google.com/mail/u/0", want: "Email"},
		{referer: "https://t.co/abc", want: "Social"},
		{referer: "https://m.facebook.com/story", want: "Social"},
		{referer: "https://blog.example.org/post", want: "Referral"},
		{referer: "https://notgoogle.example.com/", want: "Referral"},
	}

	for _, tt := range tests {
		t.Run(tt.referer, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ClassifySource(tt.referer))
		})
	}
}

func TestClassifier_Classify_FillsDerivedFields(t *testing.T) {
	c := NewClassifier(staticCountries{"203.0.113.7": "NL"})
	e := &domain.ClickEvent{
		IPAddress: "203.0.113.7",
		UserAgent: iphoneSafariUA,
		Referrer:  "https://www.bing.com/search?q=links",
	}

	c.Classify(e)

	assert.Equal(t, "Mobile", e.DeviceType)
	assert.Equal(t, "Search", e.TrafficSource)
	assert.Equal(t, "NL", e.CountryCode)
	assert.NotEmpty(t, e.Browser)
	assert.NotEmpty(t, e.OS)
}

func TestClassifier_Classify_WithoutGeoIP_UsesUnknownCountry(t *testing.T) {
	c := NewClassifier(nil)
	e := &domain.ClickEvent{IPAddress: "203.0.113.7"}

	c.Classify(e)

	assert.Equal(t, Unknown, e.CountryCode)
	assert.Equal(t, Unknown, e.DeviceType)
	assert.Equal(t, "Direct", e.TrafficSource)
}
