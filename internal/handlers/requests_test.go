package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"user@localhost", true},
		{"a@b", true},
		{"first.last+tag@sub.example.co", true},
		{"o'brien@example.ie", true},
		{"", false},
		{"not-an-email", false},
		{"a@", false},
		{"@b.com", false},
		{"a b@c.com", false},
		{"a@-b.com", false},
		{"a@b..com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.Validate(&LoginRequest{Email: tt.email, Password: "secret"})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	assert.Error(t, v.Validate(&LoginRequest{Email: "a@b.com"}), "password is required")
}
