package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/dailywins/internal/models"
)

const (
	// MaxTextLen is the maximum accomplishment text length in runes.
	// Matches the backend column constraint.
	MaxTextLen = 500
)

// ValidateText checks that accomplishment text is non-empty after trimming
// and does not exceed MaxTextLen runes.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if utf8.RuneCountInString(text) > MaxTextLen {
		return fmt.Errorf("text must not exceed %d characters", MaxTextLen)
	}

	return nil
}

// ValidateCategory checks that the category belongs to the closed set.
func ValidateCategory(category models.Category) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category: %q", category)
	}
	return nil
}
