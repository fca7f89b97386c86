package entity

import (
	"strings"

	"github.com/google/uuid"
)

// EnsureSessionTag returns the caller's session tag, or a fresh UUID when none was sent.
// The tag only correlates requests and logs; it never identifies a user.
func EnsureSessionTag(tag string) string {
	if tag = strings.TrimSpace(tag); tag != "" {
		return tag
	}

	return uuid.New().String()
}
