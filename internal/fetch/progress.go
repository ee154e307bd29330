package fetch

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/hashicorp/go-getter"
)

// ProgressTracker shows one pb bar per active download. Bars share a pool,
// so concurrent downloads render together.
type ProgressTracker struct {
	out io.Writer

	mu     sync.Mutex
	pool   *pb.Pool
	active int
}

var _ getter.ProgressTracker = (*ProgressTracker)(nil)

// NewProgressTracker renders to stderr when out is nil.
func NewProgressTracker(out io.Writer) *ProgressTracker {
	if out == nil {
		out = os.Stderr
	}
	return &ProgressTracker{out: out}
}

// TrackProgress wraps stream so reads advance a bar. totalSize may be 0
// when the server sends no length.
func (t *ProgressTracker) TrackProgress(src string, currentSize, totalSize int64, stream io.ReadCloser) io.ReadCloser {
	t.mu.Lock()
	defer t.mu.Unlock()

	bar := pb.New64(totalSize)
	bar.SetCurrent(currentSize)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", filepath.Base(src)+" ")
	bar.SetWriter(t.out)

	if t.pool == nil {
		pool := pb.NewPool()
		pool.Output = t.out
		// Without a terminal the pool cannot start; bars then render alone.
		if err := pool.Start(); err == nil {
			t.pool = pool
		}
	}
	if t.pool != nil {
		t.pool.Add(bar)
	} else {
		bar.Start()
	}
	t.active++

	return &trackedReader{
		Reader: bar.NewProxyReader(stream),
		stream: stream,
		done: func() {
			t.mu.Lock()
			defer t.mu.Unlock()

			bar.Finish()
			t.active--
			if t.active <= 0 && t.pool != nil {
				_ = t.pool.Stop()
				t.pool = nil
			}
		},
	}
}

type trackedReader struct {
	io.Reader
	stream io.Closer
	once   sync.Once
	done   func()
}

func (r *trackedReader) Close() error {
	r.once.Do(r.done)
	return r.stream.Close()
}
