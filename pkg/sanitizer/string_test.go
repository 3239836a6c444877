package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/portfolio/pkg/sanitizer"
)

func TestTrimToUpper(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase token", "frontend", "FRONTEND"},
		{"padded token", "  backend \t", "BACKEND"},
		{"already upper", "DEVOPS", "DEVOPS"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.TrimToUpper(tt.input))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and trims", "  Admin@Example.COM ", "admin@example.com"},
		{"collapses dots", "john..doe@example.com", "john.doe@example.com"},
		{"not an email", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", sanitizer.NormalizeWhitespace("  a \n b\t\tc "))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \n "))
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "ab\ncd", sanitizer.RemoveControlChars("a\x00b\ncd\x07"))
}

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, sanitizer.RemoveDuplicates([]string{"A", "B", "A", "C", "B"}))
	assert.Empty(t, sanitizer.RemoveDuplicates([]string{}))
}

func TestFilterEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", " b "}, sanitizer.FilterEmpty([]string{"", "a", "  ", " b "}))
}

func TestCompose(t *testing.T) {
	category := sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)

	assert.Equal(t, "FRONTEND", category("  frontend "))
	assert.Equal(t, "hello", sanitizer.Apply("  HELLO ", sanitizer.Trim, sanitizer.ToLower))
	assert.Equal(t, "same", sanitizer.Apply("same"))
}
