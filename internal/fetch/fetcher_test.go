package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://lists.example.com/"

func newMockedFetcher(t *testing.T, opts ...Option) (*Fetcher, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	client := &http.Client{Transport: transport}

	all := append([]Option{WithHTTPClient(client), WithLogger(log.New(io.Discard))}, opts...)
	return New(filepath.Join(t.TempDir(), "cache"), all...), transport
}

func textSource(name, file string) Source {
	return Source{Name: name, URL: baseURL + file, Type: TypeText, Enabled: true}
}

func getCalls(transport *httpmock.MockTransport, url string) int {
	return transport.GetCallCountInfo()["GET "+url]
}

func TestFetchTextSource(t *testing.T) {
	f, transport := newMockedFetcher(t)
	src := textSource("Top Words", "top.txt")
	transport.RegisterResponder(http.MethodGet, src.URL,
		httpmock.NewStringResponder(http.StatusOK, "# header\r\nalpha\n\nadmin:beta\n// note\nalpha\n"))

	got, cached, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, []string{"alpha", "beta"}, got)
	assert.FileExists(t, f.CachePath(src))
	assert.NoFileExists(t, f.CachePath(src)+".part")

	got, cached, err = f.Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, []string{"alpha", "beta"}, got)
	assert.Equal(t, 1, getCalls(transport, src.URL))
}

func TestFetchExpiredCache(t *testing.T) {
	f, transport := newMockedFetcher(t)
	src := textSource("Expiring", "exp.txt")
	transport.RegisterResponder(http.MethodGet, src.URL, httpmock.NewStringResponder(http.StatusOK, "one\n"))

	_, _, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)

	f.now = func() time.Time { return time.Now().Add(DefaultMaxAge + time.Hour) }
	_, cached, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, getCalls(transport, src.URL))
}

func TestFetchCacheDisabled(t *testing.T) {
	f, transport := newMockedFetcher(t, WithMaxAge(0))
	src := textSource("Uncached", "u.txt")
	transport.RegisterResponder(http.MethodGet, src.URL, httpmock.NewStringResponder(http.StatusOK, "one\n"))

	for range 2 {
		_, cached, err := f.Fetch(context.Background(), src)
		require.NoError(t, err)
		assert.False(t, cached)
	}
	assert.Equal(t, 2, getCalls(transport, src.URL))
}

func TestFetchJSONSource(t *testing.T) {
	f, transport := newMockedFetcher(t)

	src := Source{Name: "Json List", URL: baseURL + "list.json", Type: TypeJSON}
	transport.RegisterResponder(http.MethodGet, src.URL,
		httpmock.NewStringResponder(http.StatusOK, `["one", {"password": " two "}, 3, {"user": "x"}, "one"]`))

	got, _, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
	assert.Equal(t, ".json", filepath.Ext(f.CachePath(src)))

	broken := Source{Name: "Broken Json", URL: baseURL + "broken.json", Type: TypeJSON}
	transport.RegisterResponder(http.MethodGet, broken.URL, httpmock.NewStringResponder(http.StatusOK, "plain\ntext\n"))

	got, _, err = f.Fetch(context.Background(), broken)
	require.NoError(t, err)
	assert.Equal(t, []string{"plain", "text"}, got)
}

func TestFetchHTTPError(t *testing.T) {
	f, transport := newMockedFetcher(t)
	src := textSource("Missing", "missing.txt")
	transport.RegisterResponder(http.MethodGet, src.URL, httpmock.NewStringResponder(http.StatusNotFound, "nope"))

	_, _, err := f.Fetch(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
	assert.NoFileExists(t, f.CachePath(src))
	assert.NoFileExists(t, f.CachePath(src)+".part")
}

func TestFetchLocalFile(t *testing.T) {
	f, _ := newMockedFetcher(t)

	path := filepath.Join(t.TempDir(), "local.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o600))

	got, cached, err := f.Fetch(context.Background(), Source{Name: "Local", URL: path, Type: TypeText})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestFetchInvalidSources(t *testing.T) {
	f, _ := newMockedFetcher(t)

	for _, src := range []Source{
		{Name: "Blank", URL: "  "},
		{Name: "Malformed", URL: "https://bad host/list.txt"},
		{Name: "Absent", URL: filepath.Join(t.TempDir(), "absent.txt")},
	} {
		t.Run(src.Name, func(t *testing.T) {
			_, _, err := f.Fetch(context.Background(), src)
			assert.ErrorIs(t, err, ErrInvalidSource)
		})
	}
}

func TestFetchAll(t *testing.T) {
	f, transport := newMockedFetcher(t, WithParallel(2))

	sources := []Source{
		textSource("First", "first.txt"),
		textSource("Broken", "broken.txt"),
		textSource("Second", "second.txt"),
	}
	transport.RegisterResponder(http.MethodGet, sources[0].URL, httpmock.NewStringResponder(http.StatusOK, "a\nb\n"))
	transport.RegisterResponder(http.MethodGet, sources[1].URL, httpmock.NewStringResponder(http.StatusInternalServerError, ""))
	transport.RegisterResponder(http.MethodGet, sources[2].URL, httpmock.NewStringResponder(http.StatusOK, "b\nc\n"))

	var (
		mu     sync.Mutex
		events = map[string][]State{}
	)
	report, err := f.FetchAll(context.Background(), sources, func(st Status) {
		mu.Lock()
		defer mu.Unlock()
		events[st.Source] = append(events[st.Source], st.State)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, report.Passwords)
	require.Len(t, report.Statuses, 3)
	assert.Equal(t, StateSuccess, report.Statuses[0].State)
	assert.Equal(t, 2, report.Statuses[0].Passwords)
	assert.Equal(t, StateError, report.Statuses[1].State)
	assert.Error(t, report.Statuses[1].Err)
	assert.Equal(t, StateSuccess, report.Statuses[2].State)

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "Broken", failed[0].Source)

	assert.Equal(t, []State{StatePending, StateLoading, StateSuccess}, events["First"])
	assert.Equal(t, []State{StatePending, StateLoading, StateError}, events["Broken"])

	report, err = f.FetchAll(context.Background(), sources[:1], nil)
	require.NoError(t, err)
	assert.Equal(t, StateCached, report.Statuses[0].State)
}

func TestFetchAllNoSources(t *testing.T) {
	f, _ := newMockedFetcher(t)
	_, err := f.FetchAll(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestFetchAllCancelled(t *testing.T) {
	f, _ := newMockedFetcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.FetchAll(ctx, []Source{textSource("Never", "never.txt")}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Passwords)
}

func TestClearCache(t *testing.T) {
	f, transport := newMockedFetcher(t)
	require.NoError(t, f.ClearCache())

	src := textSource("Clear Me", "clear.txt")
	transport.RegisterResponder(http.MethodGet, src.URL, httpmock.NewStringResponder(http.StatusOK, "x\n"))
	_, _, err := f.Fetch(context.Background(), src)
	require.NoError(t, err)

	require.NoError(t, f.ClearCache())
	assert.NoFileExists(t, f.CachePath(src))
}

func TestProgressTracker(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out)

	stream := tracker.TrackProgress("https://lists.example.com/top.txt", 0, 11, io.NopCloser(bytes.NewBufferString("hello world")))
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())

	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	assert.Nil(t, tracker.pool)
	assert.Zero(t, tracker.active)
}
