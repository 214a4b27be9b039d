package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		expectError bool
	}{
		{"Valid email", "user@example.com", false},
		{"Valid with plus tag", "user+tag@example.com", false},
		{"Valid subdomain", "user@mail.example.co.uk", false},
		{"Missing at sign", "userexample.com", true},
		{"Missing domain", "user@", true},
		{"Missing TLD", "user@example", true},
		{"Empty", "", true},
		{"Too long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"Domain lowercased", "user@EXAMPLE.COM", "user@example.com"},
		{"Local part preserved", "User@EXAMPLE.com", "User@example.com"},
		{"Already normalized", "user@example.com", "user@example.com"},
		{"Whitespace trimmed", "  user@Example.com  ", "user@example.com"},
		{"No at sign passes through", "not-an-email", "not-an-email"},
		{"Last at sign wins", `"odd@local"@Example.COM`, `"odd@local"@example.com`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword(strings.Repeat("a", 72)))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 73)))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName(""))
	assert.NoError(t, ValidateName("Test User"))
	assert.NoError(t, ValidateName(strings.Repeat("n", 255)))
	assert.Error(t, ValidateName(strings.Repeat("n", 256)))
}
