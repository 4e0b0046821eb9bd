package sanitization

import (
	"strings"

	"github.com/tasmanescape/website/internal/api/dto/v1/contact"
)

// Field length caps for contact submissions. Oversized input is truncated
// rather than rejected.
const (
	MaxNameLen    = 120
	MaxEmailLen   = 254
	MaxMessageLen = 4000
)

// NormalizeContact trims and length-caps every field of a contact submission
// in place. Runs before validation so presence checks see the trimmed values.
func NormalizeContact(req *contact.ContactRequest) {
	req.Name = Truncate(strings.TrimSpace(req.Name), MaxNameLen)
	req.Email = Truncate(strings.TrimSpace(req.Email), MaxEmailLen)
	req.Message = Truncate(strings.TrimSpace(req.Message), MaxMessageLen)
	req.TurnstileToken = strings.TrimSpace(req.TurnstileToken)
}

// Truncate caps s at max runes without splitting a multi-byte character.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
