package cracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lth/hashcrack/internal/wordlist"
)

// Mode selects the attack strategy.
type Mode string

const (
	ModeWordlist   Mode = "wordlist"
	ModeBruteForce Mode = "bruteforce"
	ModeSmart      Mode = "smart"
)

// Length bounds accepted for brute-force style attacks.
const (
	MinLength = 1
	MaxLength = 40
)

var ErrInvalidConfig = errors.New("invalid attack config")

// ParseMode accepts the Mode names plus "brute-force" and "brute".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wordlist", "dictionary", "":
		return ModeWordlist, nil
	case "bruteforce", "brute-force", "brute", "incremental":
		return ModeBruteForce, nil
	case "smart":
		return ModeSmart, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// AttackConfig holds the parameters of one run.
type AttackConfig struct {
	Mode Mode

	// Brute force and smart.
	Charset   string
	MinLength int
	MaxLength int

	// Wordlist. When Wordlist is nil the list is generated from CostFactor,
	// Ultra and Mega, seeded with Verified and merged with External.
	CostFactor int
	Ultra      bool
	Mega       bool
	Wordlist   []string
	External   []string
	Verified   *wordlist.VerifiedStore
}

// Validate checks the fields the selected mode uses.
func (c AttackConfig) Validate() error {
	switch c.Mode {
	case ModeWordlist:
		if c.Wordlist == nil {
			if err := wordlist.ValidateCostFactor(c.CostFactor); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
		}
		return nil
	case ModeBruteForce, ModeSmart:
		if c.MinLength < MinLength || c.MaxLength > MaxLength {
			return fmt.Errorf("%w: lengths must be within [%d, %d], got %d-%d",
				ErrInvalidConfig, MinLength, MaxLength, c.MinLength, c.MaxLength)
		}
		if c.MinLength > c.MaxLength {
			return fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidConfig, c.MinLength, c.MaxLength)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
}
