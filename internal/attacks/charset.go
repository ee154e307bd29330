package attacks

import (
	"strings"

	"github.com/duke-git/lancet/v2/slice"
)

const (
	CharsetLower   = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetSpecial = "!@#$%^&*()_+-=[]{}|;:'\",./<>?\\`~"
	// CharsetSymbols is the symbol set used by the complex smart pass.
	CharsetSymbols  = "!@#$%^&*()_+-=[]{}|;:,.<>?/~`"
	CharsetAlpha    = CharsetLower + CharsetUpper
	CharsetLowerNum = CharsetLower + CharsetDigits
	CharsetAlphaNum = CharsetAlpha + CharsetDigits
	CharsetAll      = CharsetAlphaNum + CharsetSpecial
)

// Charset is an ordered alphabet of unique characters.
type Charset []rune

// NewCharset drops repeated characters from s, keeping first occurrences in order.
func NewCharset(s string) Charset {
	return Charset(slice.Unique([]rune(s)))
}

func (cs Charset) Len() int { return len(cs) }

func (cs Charset) String() string { return string(cs) }

// ResolveCharset expands a named charset; anything else is returned as a
// literal alphabet.
func ResolveCharset(name string) string {
	switch strings.ToLower(name) {
	case "lower":
		return CharsetLower
	case "upper":
		return CharsetUpper
	case "digits", "numbers":
		return CharsetDigits
	case "alpha":
		return CharsetAlpha
	case "lowernum":
		return CharsetLowerNum
	case "alnum", "alphanumeric":
		return CharsetAlphaNum
	case "all", "full":
		return CharsetAll
	case "special":
		return CharsetSpecial
	default:
		return name
	}
}
