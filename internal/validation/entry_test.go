package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/dailywins/internal/models"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name:    "valid text",
			text:    "Finished report",
			wantErr: false,
		},
		{
			name:    "valid text - single rune",
			text:    "x",
			wantErr: false,
		},
		{
			name:    "valid text - max length",
			text:    strings.Repeat("a", MaxTextLen),
			wantErr: false,
		},
		{
			name:    "valid text - multibyte runes counted as one",
			text:    strings.Repeat("é", MaxTextLen),
			wantErr: false,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			text:    "   \t\n",
			wantErr: true,
		},
		{
			name:    "too long",
			text:    strings.Repeat("a", MaxTextLen+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	for _, c := range models.Categories {
		assert.NoError(t, ValidateCategory(c))
	}

	assert.Error(t, ValidateCategory(models.Category("")))
	assert.Error(t, ValidateCategory(models.Category("chores")))
	assert.Error(t, ValidateCategory(models.Category("Work"))) // case-sensitive
}
