package contact

// ContactRequest represents a contact form submission.
// Fields are normalized (trimmed and length-capped) before validation, so
// the validate tags only cover presence and shape.
type ContactRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,contact_email"`
	Message        string `json:"message" validate:"required"`
	TurnstileToken string `json:"turnstileToken" validate:"required"`
}
