package md2html

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTOC_Validate - Depth bounds
// ---------------------------------------------------------------------------

func TestTOC_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		toc     *TOC
		wantErr error
	}{
		{"nil is valid", nil, nil},
		{"zero uses defaults", &TOC{}, nil},
		{"full range", &TOC{MinDepth: 1, MaxDepth: 6}, nil},
		{"single level", &TOC{MinDepth: 3, MaxDepth: 3}, nil},
		{"only min above default max", &TOC{MinDepth: 4}, ErrInvalidTOCDepth},
		{"min too low", &TOC{MinDepth: -1, MaxDepth: 3}, ErrInvalidTOCDepth},
		{"max too high", &TOC{MinDepth: 1, MaxDepth: 7}, ErrInvalidTOCDepth},
		{"min above max", &TOC{MinDepth: 3, MaxDepth: 2}, ErrInvalidTOCDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.toc.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTOC_Depths(t *testing.T) {
	t.Parallel()

	minDepth, maxDepth := (&TOC{}).depths()
	if minDepth != DefaultTOCMinDepth || maxDepth != DefaultTOCMaxDepth {
		t.Errorf("depths() = (%d, %d), want (%d, %d)", minDepth, maxDepth, DefaultTOCMinDepth, DefaultTOCMaxDepth)
	}

	minDepth, maxDepth = (&TOC{MinDepth: 1, MaxDepth: 5}).depths()
	if minDepth != 1 || maxDepth != 5 {
		t.Errorf("depths() = (%d, %d), want (1, 5)", minDepth, maxDepth)
	}
}
