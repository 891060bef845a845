package assets

import "fmt"

// maxAssetNameLen bounds style names; longer names are never file names we ship.
const maxAssetNameLen = 64

// ValidateAssetName checks that name can be used as a bare file name.
// Only ASCII letters, digits, '-' and '_' are accepted, which rules out
// separators, traversal and extension tricks in one pass.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, maxAssetNameLen)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
