package errors

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Go (programming language)", false},
		{"with slash", "AC/DC", false},
		{"unicode", "Zürich", false},
		{"quotes", `Rock 'n' Roll "live"`, false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 256), true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"hash", "Foo#Section", true},
		{"angle bracket", "<script>", true},
		{"pipe", "a|b", true},
		{"braces", "{{template}}", true},
		{"invalid utf8", "abc\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTitle) {
				t.Errorf("ValidateTitle(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidTitle)
			}
		})
	}
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "volcano", false},
		{"phrase", "history of rome", false},
		{"tab", "a\tb", false},

		{"empty", "", true},
		{"too long", strings.Repeat("k", MaxKeywordLength+1), true},
		{"null byte", "foo\x00", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeyword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
