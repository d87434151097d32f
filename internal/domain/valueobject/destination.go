package valueobject

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const MaxDestinationLength = 2048

// DestinationURL is the absolute http(s) URL a short link redirects to.
type DestinationURL struct {
	value  string
	parsed *url.URL
}

// NewDestinationURL validates raw and returns it as a DestinationURL.
// Surrounding whitespace is ignored.
func NewDestinationURL(raw string) (DestinationURL, error) {
	raw = strings.TrimSpace(raw)
	if err := validation.Validate(raw,
		validation.Required.Error("destination url is required"),
		validation.Length(1, MaxDestinationLength).Error(fmt.Sprintf("destination url exceeds %d characters", MaxDestinationLength)),
		is.URL.Error("destination url is not a valid url"),
	); err != nil {
		return DestinationURL{}, fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}

	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return DestinationURL{}, fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}

	if scheme := strings.ToLower(parsed.Scheme); scheme != "http" && scheme != "https" {
		return DestinationURL{}, fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidDestination, parsed.Scheme)
	}

	if parsed.Host == "" {
		return DestinationURL{}, fmt.Errorf("%w: url must have a host", ErrInvalidDestination)
	}

	return DestinationURL{value: raw, parsed: parsed}, nil
}

func (d DestinationURL) String() string {
	return d.value
}

// Host returns the host portion of the URL.
func (d DestinationURL) Host() string {
	if d.parsed == nil {
		return ""
	}
	return d.parsed.Host
}

func (d DestinationURL) IsEmpty() bool {
	return d.value == ""
}
