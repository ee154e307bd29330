package wordlist

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lth/hashcrack/internal/digest"
	"github.com/lth/hashcrack/internal/shared"
)

// VerifiedStore collects passwords confirmed by successful runs. Generated
// wordlists start with its contents. Create one per application and pass it
// to the generator; it is safe for concurrent use.
type VerifiedStore struct {
	mu     sync.RWMutex
	set    *Set
	logger *log.Logger
}

func NewVerifiedStore() *VerifiedStore {
	return &VerifiedStore{set: NewSet(16), logger: shared.Logger}
}

// Add records password as the plaintext of target.
func (v *VerifiedStore) Add(password string, target digest.Target) {
	v.mu.Lock()
	added := v.set.Add(password)
	v.mu.Unlock()

	if added {
		prefix := target.Hex
		if len(prefix) > 16 {
			prefix = prefix[:16]
		}
		v.logger.Info("Verified password", "family", target.Family, "digest", prefix+"...")
	}
}

// Seed adds passwords without logging, e.g. when restoring from history.
func (v *VerifiedStore) Seed(passwords ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set.AddAll(passwords...)
}

// All returns a copy of the stored passwords in insertion order.
func (v *VerifiedStore) All() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]string(nil), v.set.Items()...)
}

func (v *VerifiedStore) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.set.Len()
}

func (v *VerifiedStore) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set = NewSet(16)
}
