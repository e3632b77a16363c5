package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTitleLength is the longest article title accepted, in bytes.
// Wikipedia titles are limited to 255 bytes of UTF-8.
const MaxTitleLength = 255

// MaxKeywordLength caps free-text search input.
const MaxKeywordLength = 300

// ValidateTitle validates an article title before it is used in a request path.
//
// The rules mirror what the encyclopedia itself accepts:
//   - No empty or whitespace-only titles
//   - No control characters
//   - Valid UTF-8, at most [MaxTitleLength] bytes
//   - None of the characters forbidden in page names: # < > [ ] | { }
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidTitle, "title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return New(ErrCodeInvalidTitle, "title too long (max %d bytes)", MaxTitleLength)
	}
	if !utf8.ValidString(title) {
		return New(ErrCodeInvalidTitle, "title is not valid UTF-8")
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "title contains invalid control characters")
		}
	}
	if i := strings.IndexAny(title, "#<>[]|{}"); i >= 0 {
		return New(ErrCodeInvalidTitle, "title contains forbidden character %q", title[i])
	}
	return nil
}

// ValidateKeyword validates a search keyword. Keywords are trimmed by the
// caller; an empty keyword means "no search" and is rejected here so callers
// can skip the request.
func ValidateKeyword(kw string) error {
	if kw == "" {
		return New(ErrCodeInvalidKeyword, "keyword cannot be empty")
	}
	if len(kw) > MaxKeywordLength {
		return New(ErrCodeInvalidKeyword, "keyword too long (max %d characters)", MaxKeywordLength)
	}
	for _, r := range kw {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidKeyword, "keyword contains invalid control characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
