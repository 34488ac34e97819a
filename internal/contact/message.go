// Package contact delivers footer contact-form messages to the agency inbox.
package contact

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxMessageLength is the longest accepted message, in characters.
const MaxMessageLength = 5000

var (
	ErrInvalidEmail   = errors.New("contact: invalid email address")
	ErrEmptyMessage   = errors.New("contact: message is empty")
	ErrMessageTooLong = errors.New("contact: message is too long")
	ErrDeliveryFailed = errors.New("contact: delivery failed")
)

// Message is a single contact-form submission.
type Message struct {
	Email   string
	Message string
}

// Normalize trims surrounding whitespace from both fields.
func (m Message) Normalize() Message {
	return Message{
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks a normalized message.
func (m Message) Validate() error {
	if !validEmail(m.Email) {
		return ErrInvalidEmail
	}
	if m.Message == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(m.Message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// IsValidation reports whether err came from Validate.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrEmptyMessage) ||
		errors.Is(err, ErrMessageTooLong)
}

func validEmail(addr string) bool {
	if strings.IndexFunc(addr, unicode.IsSpace) >= 0 {
		return false
	}
	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return false
	}
	domain := addr[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
