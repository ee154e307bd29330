package digest

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Target is a normalized digest bound to a concrete family.
type Target struct {
	Hex    string
	Family Family
	// Guessed is set when Auto could not match the digest length and fell
	// back to SHA256.
	Guessed bool
}

// ParseTarget trims and lowercases raw, validates it as hex and resolves f.
// Auto picks the family from the digest length; an explicit family must
// agree with that length.
func ParseTarget(raw string, f Family) (Target, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Target{}, ErrEmptyTarget
	}
	if _, err := hex.DecodeString(s); err != nil {
		return Target{}, fmt.Errorf("%w: %v", ErrMalformedTarget, err)
	}

	if f == Auto {
		fam, ok := Detect(len(s))
		return Target{Hex: s, Family: fam, Guessed: !ok}, nil
	}

	if _, known := familyNames[f]; !known {
		return Target{}, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
	if want := f.HexLen(); want != len(s) {
		return Target{}, fmt.Errorf("%w: %s wants %d hex characters, got %d", ErrFamilyMismatch, f, want, len(s))
	}
	return Target{Hex: s, Family: f}, nil
}

// Matches reports whether digest equals the target.
func (t Target) Matches(digest string) bool {
	return digest == t.Hex
}

func (t Target) String() string {
	return t.Family.String() + ":" + t.Hex
}
