package wordlist

import (
	"sync"
	"testing"

	"github.com/lth/hashcrack/internal/digest"
	"github.com/stretchr/testify/assert"
)

func TestVerifiedStore(t *testing.T) {
	store := NewVerifiedStore()
	store.logger = quietLogger
	target, err := digest.ParseTarget(digest.Digest("hunter2", digest.MD5), digest.Auto)
	assert.NoError(t, err)

	store.Add("hunter2", target)
	store.Add("hunter2", target)
	store.Seed("letmein")

	assert.Equal(t, []string{"hunter2", "letmein"}, store.All())
	assert.Equal(t, 2, store.Len())

	store.Clear()
	assert.Zero(t, store.Len())
	assert.Empty(t, store.All())
}

func TestVerifiedStoreConcurrentAdds(t *testing.T) {
	store := NewVerifiedStore()
	store.logger = quietLogger
	target, _ := digest.ParseTarget(digest.Digest("x", digest.SHA256), digest.Auto)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(string(rune('a'+i%26)), target)
			_ = store.All()
		}()
	}
	wg.Wait()

	assert.Equal(t, 26, store.Len())
}
