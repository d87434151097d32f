package enrichment

import (
	ua "github.com/mileusna/useragent"
)

// Device is what a User-Agent string says about the client.
type Device struct {
	Type    string
	Browser string
	OS      string
}

// DeviceDetector detects device type, browser and OS from User-Agent strings.
type DeviceDetector struct{}

func NewDeviceDetector() *DeviceDetector {
	return &DeviceDetector{}
}

// Detect parses a User-Agent string. Type is one of "Desktop", "Mobile",
// "Tablet", "Bot" or "Unknown"; browser and OS fall back to "Unknown".
func (d *DeviceDetector) Detect(uaString string) Device {
	if uaString == "" {
		return Device{Type: Unknown, Browser: Unknown, OS: Unknown}
	}

	parsed := ua.Parse(uaString)

	return Device{
		Type:    deviceType(parsed),
		Browser: orUnknown(parsed.Name),
		OS:      orUnknown(parsed.OS),
	}
}

func deviceType(parsed ua.UserAgent) string {
	// Bots first: crawlers often also claim to be desktop browsers.
	switch {
	case parsed.Bot:
		return "Bot"
	case parsed.Tablet:
		return "Tablet"
	case parsed.Mobile:
		return "Mobile"
	case parsed.Desktop:
		return "Desktop"
	default:
		return Unknown
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
