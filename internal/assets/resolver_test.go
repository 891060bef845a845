package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
	})

	t.Run("custom path", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false, want true")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "/* custom default */")
	writeStyle(t, dir, "brand", "/* brand */")

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{"custom overrides embedded", "default", "/* custom default */", nil},
		{"custom only", "brand", "/* brand */", nil},
		{"falls back to embedded", "minimal", "font-family", nil},
		{"missing everywhere", "nope", "", ErrStyleNotFound},
		{"invalid name not retried", "a/b", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := r.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(css, tt.want) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, css, tt.want)
			}
		})
	}
}

func TestAssetResolver_ReadErrorNotMasked(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A directory named like a style file cannot be read as one.
	if err := os.MkdirAll(filepath.Join(dir, "styles", "minimal.css"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if _, err := r.LoadStyle("minimal"); !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadStyle() error = %v, want ErrAssetRead", err)
	}
}

func TestAssetResolver_StyleNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "default", "a{}")
	writeStyle(t, dir, "brand", "a{}")

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	names, err := r.StyleNames()
	if err != nil {
		t.Fatalf("StyleNames() error = %v", err)
	}

	want := []string{"brand", "default", "minimal"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("StyleNames() = %v, want %v", names, want)
	}
}
