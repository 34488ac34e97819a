package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want error
	}{
		{"valid", Message{Email: "a@b.co", Message: "Hello"}, nil},
		{"missing at", Message{Email: "ab.co", Message: "Hello"}, ErrInvalidEmail},
		{"empty local part", Message{Email: "@b.co", Message: "Hello"}, ErrInvalidEmail},
		{"no dot in domain", Message{Email: "a@localhost", Message: "Hello"}, ErrInvalidEmail},
		{"trailing dot", Message{Email: "a@b.", Message: "Hello"}, ErrInvalidEmail},
		{"whitespace", Message{Email: "a b@c.co", Message: "Hello"}, ErrInvalidEmail},
		{"empty message", Message{Email: "a@b.co", Message: ""}, ErrEmptyMessage},
		{"too long", Message{Email: "a@b.co", Message: strings.Repeat("x", MaxMessageLength+1)}, ErrMessageTooLong},
		{"at limit", Message{Email: "a@b.co", Message: strings.Repeat("é", MaxMessageLength)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.msg.Validate(), tt.want)
		})
	}
}

func TestMessage_Normalize(t *testing.T) {
	m := Message{Email: "  a@b.co\n", Message: "\t hi  "}.Normalize()
	assert.Equal(t, Message{Email: "a@b.co", Message: "hi"}, m)
	assert.ErrorIs(t, Message{Email: "a@b.co", Message: "   "}.Normalize().Validate(), ErrEmptyMessage)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidEmail))
	assert.True(t, IsValidation(ErrMessageTooLong))
	assert.False(t, IsValidation(ErrDeliveryFailed))
	assert.False(t, IsValidation(nil))
}
