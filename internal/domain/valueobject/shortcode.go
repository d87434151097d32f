package valueobject

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinCustomCodeLength = 3
	MaxCustomCodeLength = 32
)

var shortCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ShortCode is a user-chosen short code. Generated codes come from the
// allocator and never pass through here.
type ShortCode struct {
	value string
}

// NewShortCode trims code and validates its length and character set.
func NewShortCode(code string) (ShortCode, error) {
	code = strings.TrimSpace(code)
	if err := validation.Validate(code,
		validation.Required.Error("short code is required"),
		validation.Length(MinCustomCodeLength, MaxCustomCodeLength).
			Error(fmt.Sprintf("short code must be %d-%d characters", MinCustomCodeLength, MaxCustomCodeLength)),
		validation.Match(shortCodeRegex).Error("short code must contain only alphanumeric characters, underscores, and hyphens"),
	); err != nil {
		return ShortCode{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return ShortCode{value: code}, nil
}

func (s ShortCode) String() string {
	return s.value
}

// IsEmpty returns true if the ShortCode is empty.
func (s ShortCode) IsEmpty() bool {
	return s.value == ""
}

// Equals compares two ShortCodes for equality.
func (s ShortCode) Equals(other ShortCode) bool {
	return s.value == other.value
}
