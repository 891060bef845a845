package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		style        string
		wantErr      error
		wantContains string
	}{
		{"default style", DefaultStyleName, nil, "nav.toc"},
		{"minimal style", "minimal", nil, "font-family"},
		{"unknown style", "nonexistent", ErrStyleNotFound, ""},
		{"traversal rejected", "../etc", ErrInvalidAssetName, ""},
		{"extension rejected", "default.css", ErrInvalidAssetName, ""},
	}

	loader := NewEmbeddedLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(css, tt.wantContains) {
				t.Errorf("LoadStyle(%q) should contain %q", tt.style, tt.wantContains)
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	got := StyleNames()
	want := []string{"default", "minimal"}
	if len(got) != len(want) {
		t.Fatalf("StyleNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StyleNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadStyle_PackageLevel(t *testing.T) {
	t.Parallel()

	if _, err := LoadStyle(DefaultStyleName); err != nil {
		t.Errorf("LoadStyle(%q) unexpected error: %v", DefaultStyleName, err)
	}
	if _, err := LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}
