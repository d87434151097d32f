package enrichment

import "link-tracker/internal/domain"

const Unknown = "Unknown"

// CountryResolver maps an IP address to an ISO country code.
type CountryResolver interface {
	ResolveCountry(ip string) string
}

// Classifier fills the derived fields of a click event.
type Classifier struct {
	devices   *DeviceDetector
	referers  *RefererClassifier
	countries CountryResolver
}

// NewClassifier builds a Classifier. countries may be nil, in which case
// every click is attributed to "Unknown".
func NewClassifier(countries CountryResolver) *Classifier {
	return &Classifier{
		devices:   NewDeviceDetector(),
		referers:  NewRefererClassifier(),
		countries: countries,
	}
}

// Classify sets device, browser, OS, traffic source and country on e.
func (c *Classifier) Classify(e *domain.ClickEvent) {
	device := c.devices.Detect(e.UserAgent)
	e.DeviceType = device.Type
	e.Browser = device.Browser
	e.OS = device.OS
	e.TrafficSource = c.referers.ClassifySource(e.Referrer)

	e.CountryCode = Unknown
	if c.countries != nil {
		e.CountryCode = c.countries.ResolveCountry(e.IPAddress)
	}
}
