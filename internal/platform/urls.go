package platform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/ytgrab/internal/model"
)

// CleanURL strips whitespace and control characters pasted along with a URL
func CleanURL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "\n", "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "")
	cleaned = strings.ReplaceAll(cleaned, "\t", "")
	return strings.TrimSpace(cleaned)
}

// ValidateURL checks that raw is an absolute http(s) URL with a host
func ValidateURL(raw string) error {
	raw = CleanURL(raw)
	if raw == "" {
		return fmt.Errorf("%w: url is empty", model.ErrValidation)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrValidation, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: URL must start with http:// or https://", model.ErrValidation)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: URL has no host", model.ErrValidation)
	}

	return nil
}
