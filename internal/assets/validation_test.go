package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "creative", nil},
		{"hyphen", "my-style", nil},
		{"underscore", "my_style", nil},
		{"digits and case", "Style123", nil},
		{"max length", strings.Repeat("a", maxAssetNameLen), nil},
		{"empty", "", ErrInvalidAssetName},
		{"too long", strings.Repeat("a", maxAssetNameLen+1), ErrInvalidAssetName},
		{"forward slash", "path/to/style", ErrInvalidAssetName},
		{"backslash", `path\to\style`, ErrInvalidAssetName},
		{"dot dot", "..", ErrInvalidAssetName},
		{"extension", "style.css", ErrInvalidAssetName},
		{"space", "my style", ErrInvalidAssetName},
		{"non ascii", "stylé", ErrInvalidAssetName},
		{"null byte", "style\x00", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
