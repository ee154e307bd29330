// Package digest maps hash family identifiers to single-pass, unsalted
// digest functions and normalizes target digests.
package digest

import (
	"crypto/md5"  //nolint:gosec // recovering legacy digests
	"crypto/sha1" //nolint:gosec // recovering legacy digests
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Family identifies a hash algorithm. Auto is a pseudo-family that resolves
// by digest length.
type Family int

const (
	Auto Family = iota
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
)

var (
	ErrUnknownFamily   = errors.New("unknown hash family")
	ErrEmptyTarget     = errors.New("target digest is empty")
	ErrMalformedTarget = errors.New("target digest is not valid hex")
	ErrFamilyMismatch  = errors.New("target digest length does not match hash family")
)

var familyNames = map[Family]string{
	Auto:   "auto",
	MD5:    "md5",
	SHA1:   "sha1",
	SHA224: "sha224",
	SHA256: "sha256",
	SHA384: "sha384",
	SHA512: "sha512",
}

// hex lengths of each concrete family
var hexLengths = map[int]Family{
	32:  MD5,
	40:  SHA1,
	56:  SHA224,
	64:  SHA256,
	96:  SHA384,
	128: SHA512,
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// HexLen returns the length of the lowercase hex digest produced by f, or 0
// for Auto and unknown values.
func (f Family) HexLen() int {
	for n, fam := range hexLengths {
		if fam == f {
			return n
		}
	}
	return 0
}

// Families lists the concrete families in ascending digest size.
func Families() []Family {
	return []Family{MD5, SHA1, SHA224, SHA256, SHA384, SHA512}
}

// ParseFamily accepts the names produced by String, case-insensitively, plus
// the dashed forms ("sha-256").
func ParseFamily(s string) (Family, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	if name == "" {
		return Auto, nil
	}
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Detect maps a hex digest length to a family. ok is false when the length
// matches no family, in which case SHA256 is returned.
func Detect(hexLen int) (f Family, ok bool) {
	if f, ok = hexLengths[hexLen]; ok {
		return f, true
	}
	return SHA256, false
}

func newHash(f Family) hash.Hash {
	switch f {
	case MD5:
		return md5.New() //nolint:gosec
	case SHA1:
		return sha1.New() //nolint:gosec
	case SHA224:
		return sha256.New224()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	default:
		return sha256.New()
	}
}

// Digest returns the lowercase hex digest of input. Auto and unsupported
// families hash with SHA256.
func Digest(input string, f Family) string {
	h := newHash(f)
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// Func computes a digest. The engine calls it once per candidate; an error
// skips that candidate.
type Func func(input string, f Family) (string, error)

// Default is the Func backed by Digest.
func Default(input string, f Family) (string, error) {
	return Digest(input, f), nil
}
