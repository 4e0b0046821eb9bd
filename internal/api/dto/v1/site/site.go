package site

// SiteConfig is the client configuration served to the browser. It mirrors
// the immutable server-side config; the client treats it as read-only.
type SiteConfig struct {
	ContactEndpoint string `json:"contactEndpoint"`
	BookingURL      string `json:"bookingUrl"`
	InstagramURL    string `json:"instagramUrl"`
}
