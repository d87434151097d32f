package domain

import "time"

// Click is a raw redirect hit as captured by the delivery layer.
type Click struct {
	LinkID    string    `json:"link_id"`
	At        time.Time `json:"at"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
}

// ClickEvent is an append-only record in the click store. Raw request
// fields are kept next to the values derived from them.
type ClickEvent struct {
	LinkID    string
	ClickTime time.Time
	IPAddress string
	UserAgent string
	Referrer  string

	DeviceType    string
	Browser       string
	OS            string
	TrafficSource string
	CountryCode   string
}

// NewClickEvent builds an event from a click; derived fields are left for enrichment.
func NewClickEvent(c Click) *ClickEvent {
	return &ClickEvent{
		LinkID:    c.LinkID,
		ClickTime: c.At.UTC(),
		IPAddress: c.IPAddress,
		UserAgent: c.UserAgent,
		Referrer:  c.Referrer,
	}
}

// Dimension names a derived click attribute that can be grouped on.
type Dimension string

const (
	DimensionDevice  Dimension = "device_type"
	DimensionBrowser Dimension = "browser"
	DimensionOS      Dimension = "os"
	DimensionSource  Dimension = "traffic_source"
	DimensionCountry Dimension = "country_code"
)

// Dimensions lists every groupable attribute in display order.
var Dimensions = []Dimension{
	DimensionDevice,
	DimensionBrowser,
	DimensionOS,
	DimensionSource,
	DimensionCountry,
}

// GroupCount is the number of clicks for one value of a dimension.
type GroupCount struct {
	Value string
	Count int64
}
