// Package fetch downloads external wordlists into a local cache and merges
// them into one candidate list.
package fetch

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/duke-git/lancet/v2/validator"
	"github.com/hashicorp/go-getter"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lth/hashcrack/internal/shared"
	"github.com/lth/hashcrack/internal/wordlist"
)

const (
	DefaultMaxAge   = 7 * 24 * time.Hour
	DefaultTimeout  = 30 * time.Second
	DefaultParallel = 4

	defaultUmask        = 0o022
	cacheDirPermissions = 0o750
)

var (
	ErrNoSources     = errors.New("no wordlist sources selected")
	ErrUnknownSource = errors.New("unknown wordlist source")
	ErrInvalidSource = errors.New("invalid wordlist source")
)

// State is the lifecycle of one source within FetchAll.
type State string

const (
	StatePending State = "pending"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateCached  State = "cached"
	StateError   State = "error"
)

// Status reports the outcome for a single source.
type Status struct {
	Source    string
	State     State
	Passwords int
	Err       error
}

// Report is the result of FetchAll.
type Report struct {
	// Passwords is the merged, de-duplicated list in source order.
	Passwords []string
	Statuses  []Status
}

// Failed returns the statuses that ended in StateError.
func (r Report) Failed() []Status {
	var out []Status
	for _, s := range r.Statuses {
		if s.State == StateError {
			out = append(out, s)
		}
	}
	return out
}

// Fetcher downloads sources with go-getter and keeps the raw files in a
// cache directory.
type Fetcher struct {
	cacheDir string
	maxAge   time.Duration
	timeout  time.Duration
	parallel int
	client   *http.Client
	tracker  getter.ProgressTracker
	logger   *log.Logger
	now      func() time.Time
}

type Option func(*Fetcher)

// WithMaxAge sets how long a cached file is reused. Zero disables reuse.
func WithMaxAge(d time.Duration) Option {
	return func(f *Fetcher) { f.maxAge = d }
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithParallel bounds concurrent downloads in FetchAll.
func WithParallel(n int) Option {
	return func(f *Fetcher) { f.parallel = max(n, 1) }
}

func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithProgress attaches a download progress tracker.
func WithProgress(t getter.ProgressTracker) Option {
	return func(f *Fetcher) { f.tracker = t }
}

func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

func New(cacheDir string, opts ...Option) *Fetcher {
	f := &Fetcher{
		cacheDir: cacheDir,
		maxAge:   DefaultMaxAge,
		timeout:  DefaultTimeout,
		parallel: DefaultParallel,
		client:   &http.Client{},
		logger:   shared.Logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CachePath is where the raw body of src is stored.
func (f *Fetcher) CachePath(src Source) string {
	ext := ".txt"
	if src.Type == TypeJSON {
		ext = ".json"
	}
	return filepath.Join(f.cacheDir, src.Slug()+ext)
}

// Fetch returns the parsed entries of src, downloading it unless a fresh
// cached copy exists. The bool reports whether the cache was used.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]string, bool, error) {
	if strutil.IsBlank(src.URL) {
		return nil, false, errors.Wrapf(ErrInvalidSource, "%s has no url", src.Name)
	}

	path := f.CachePath(src)
	cached := f.fresh(path)
	if !cached {
		if err := f.download(ctx, src, path); err != nil {
			return nil, false, err
		}
	} else {
		f.logger.Debug("Using cached wordlist", "source", src.Name, "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cached, errors.Wrapf(err, "failed to read cached %s", src.Name)
	}
	return f.parse(src, data), cached, nil
}

// FetchAll fetches sources concurrently. A failing source is recorded in
// its Status and does not abort the others; only cancellation of ctx is
// returned as an error. onStatus, when set, is called for every state
// change and may be called from several goroutines.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source, onStatus func(Status)) (Report, error) {
	if len(sources) == 0 {
		return Report{}, ErrNoSources
	}

	var (
		mu       sync.Mutex
		statuses = make([]Status, len(sources))
		lists    = make([][]string, len(sources))
	)
	update := func(i int, st Status) {
		mu.Lock()
		statuses[i] = st
		mu.Unlock()
		if onStatus != nil {
			onStatus(st)
		}
	}

	for i, src := range sources {
		update(i, Status{Source: src.Name, State: StatePending})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.parallel)
	for i, src := range sources {
		g.Go(func() error {
			if gctx.Err() != nil {
				update(i, Status{Source: src.Name, State: StateError, Err: gctx.Err()})
				return nil
			}
			update(i, Status{Source: src.Name, State: StateLoading})

			entries, cached, err := f.Fetch(gctx, src)
			if err != nil {
				f.logger.Warn("Failed to fetch wordlist", "source", src.Name, "error", err)
				update(i, Status{Source: src.Name, State: StateError, Err: err})
				return nil
			}

			lists[i] = entries
			state := StateSuccess
			if cached {
				state = StateCached
			}
			update(i, Status{Source: src.Name, State: state, Passwords: len(entries)})
			f.logger.Info("Loaded wordlist", "source", src.Name, "passwords", len(entries), "cached", cached)
			return nil
		})
	}
	_ = g.Wait()

	set := wordlist.NewSet(0)
	for _, l := range lists {
		set.AddAll(l...)
	}
	report := Report{Passwords: set.Items(), Statuses: statuses}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	f.logger.Info("External wordlists merged", "sources", len(sources), "failed", len(report.Failed()), "passwords", len(report.Passwords))
	return report, nil
}

// ClearCache removes every cached file.
func (f *Fetcher) ClearCache() error {
	if !fileutil.IsExist(f.cacheDir) {
		return nil
	}
	return errors.Wrap(os.RemoveAll(f.cacheDir), "failed to clear wordlist cache")
}

func (f *Fetcher) fresh(path string) bool {
	if f.maxAge <= 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return false
	}
	return f.now().Sub(info.ModTime()) <= f.maxAge
}

// download fetches src into a partial file and renames it over path once
// complete.
func (f *Fetcher) download(ctx context.Context, src Source, path string) error {
	getSrc, err := f.resolve(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.cacheDir, cacheDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	partial := path + ".part"
	_ = os.Remove(partial)

	pwd, _ := os.Getwd()
	client := &getter.Client{
		Ctx:  ctx,
		Src:  getSrc,
		Dst:  partial,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
		Getters: map[string]getter.Getter{
			"http":  &getter.HttpGetter{Client: f.client},
			"https": &getter.HttpGetter{Client: f.client},
			"file":  &getter.FileGetter{Copy: true},
		},
	}

	opts := []getter.ClientOption{getter.WithUmask(os.FileMode(defaultUmask))}
	if f.tracker != nil {
		opts = append(opts, getter.WithProgress(f.tracker))
	}
	if err := client.Configure(opts...); err != nil {
		return errors.Wrap(err, "failed to configure download")
	}

	f.logger.Debug("Downloading wordlist", "source", src.Name, "url", src.URL)
	if err := client.Get(); err != nil {
		_ = os.Remove(partial)
		if ctx.Err() != nil {
			return errors.Wrapf(ctx.Err(), "download of %s interrupted", src.Name)
		}
		return errors.Wrapf(err, "failed to download %s", src.Name)
	}

	if err := os.Rename(partial, path); err != nil {
		_ = os.Remove(partial)
		return errors.Wrapf(err, "failed to store %s", src.Name)
	}
	return nil
}

// resolve turns a source location into a go-getter source string. http(s)
// URLs must be well formed; anything else is read as a local file path.
func (f *Fetcher) resolve(src Source) (string, error) {
	loc := strings.TrimSpace(src.URL)
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		if !validator.IsUrl(loc) {
			return "", errors.Wrapf(ErrInvalidSource, "%s: malformed url %q", src.Name, loc)
		}
		return loc, nil
	}

	loc = strings.TrimPrefix(loc, "file://")
	abs, err := filepath.Abs(loc)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSource, "%s: %v", src.Name, err)
	}
	if !fileutil.IsExist(abs) {
		return "", errors.Wrapf(ErrInvalidSource, "%s: %s does not exist", src.Name, abs)
	}
	return "file::" + abs, nil
}

func (f *Fetcher) parse(src Source, data []byte) []string {
	if src.Type == TypeJSON {
		entries, err := wordlist.ParseExternalJSON(data)
		if err == nil {
			return entries
		}
		f.logger.Warn("Source is not a JSON array, reading it as text", "source", src.Name, "error", err)
	}
	return wordlist.ParseExternal(string(data))
}
