package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const mailSendURL = "https://api.mailchannels.net/tx/v1/send"

// MailService delivers contact submissions through the MailChannels
// transactional send API.
type MailService struct {
	to       string
	from     string
	siteName string
	sendURL  string
	client   *http.Client
}

// NewMailService creates a new mail service. to is the receiving inbox and
// from must be a sender verified for the sending domain.
func NewMailService(to, from, siteName string) *MailService {
	return &MailService{
		to:       to,
		from:     from,
		siteName: siteName,
		sendURL:  mailSendURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ContactEmail carries everything that goes into one outbound message.
// Built fresh per request, never persisted.
type ContactEmail struct {
	Name      string
	Email     string
	Message   string
	IP        string
	UserAgent string
	Time      time.Time
}

// MailChannels send payload
type mailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailPersonalization struct {
	To []mailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendRequest struct {
	Personalizations []mailPersonalization `json:"personalizations"`
	From             mailAddress           `json:"from"`
	ReplyTo          mailAddress           `json:"reply_to"`
	Subject          string                `json:"subject"`
	Content          []mailContent         `json:"content"`
}

// SendContactEmail composes and sends one plain-text email for a contact
// submission. Reply-to points at the submitter so the inbox can answer
// directly.
func (s *MailService) SendContactEmail(email *ContactEmail) error {
	if s.to == "" || s.from == "" {
		return fmt.Errorf("contact email addresses not configured")
	}

	body := fmt.Sprintf(
		"Name: %s\n"+
			"Email: %s\n\n"+
			"Message:\n%s\n\n"+
			"---\n"+
			"IP: %s\n"+
			"UA: %s\n"+
			"Time: %s\n",
		email.Name,
		email.Email,
		email.Message,
		email.IP,
		email.UserAgent,
		email.Time.Format(time.RFC3339),
	)

	payload := mailSendRequest{
		Personalizations: []mailPersonalization{
			{To: []mailAddress{{Email: s.to}}},
		},
		From:    mailAddress{Email: s.from, Name: s.siteName},
		ReplyTo: mailAddress{Email: email.Email, Name: email.Name},
		Subject: fmt.Sprintf("%s enquiry - %s", s.siteName, email.Name),
		Content: []mailContent{
			{Type: "text/plain", Value: body},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.sendURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}
