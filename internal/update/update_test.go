// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/formgen/internal/state"
	"github.com/pdiddy/formgen/pkg/types"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.1.0", "1.1.0", 0},
		{"1.1.0", "1.1.1", -1},
		{"1.2.0", "1.1.9", 1},
		{"1.10.0", "1.9.0", 1},
		{"2.0.0", "10.0.0", -1},
		{"1.1", "1.1.0", 0},
		{"1", "1.0.1", -1},
		{"1.2rc1.0", "1.2.0", 0},
		{"dev", "0.0.1", -1},
		{"v1.2.3", "1.2.3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestFindVersion(t *testing.T) {
	v, err := FindVersion("latest: 1.2.3\nprevious: 1.1.0")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)

	_, err = FindVersion("version one point two")
	assert.ErrorIs(t, err, ErrNoVersion)
}

func feedServer(t *testing.T, body string, status int, calls *int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		status    int
		current   string
		available bool
		wantErr   bool
	}{
		{name: "newer release", body: "1.2.0\n", status: 200, current: "1.1.0", available: true},
		{name: "same release", body: "1.1.0", status: 200, current: "1.1.0"},
		{name: "older feed", body: "v1.0.9", status: 200, current: "1.1.0"},
		{name: "no version", body: "<html>maintenance</html>", status: 200, current: "1.1.0", wantErr: true},
		{name: "server error", body: "", status: 500, current: "1.1.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := feedServer(t, tt.body, tt.status, nil)
			c := NewChecker(types.UpdateConfig{URL: ts.URL}, tt.current, nil)

			res, err := c.Check(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, res.Available)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.available, res.Available)
			assert.Equal(t, tt.current, res.Current)
		})
	}
}

func TestCheckTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	cfg := types.UpdateConfig{URL: ts.URL}
	cfg.Timeout = 50 * time.Millisecond
	c := NewChecker(cfg, "1.0.0", nil)

	start := time.Now()
	_, err := c.Check(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCheckOnStart(t *testing.T) {
	var calls int32
	ts := feedServer(t, "9.9.9", 200, &calls)

	checkFile := state.NewCheckFile(filepath.Join(t.TempDir(), "last_update_check.txt"))
	cfg := types.UpdateConfig{URL: ts.URL, OnStart: true, Interval: time.Hour}
	c := NewChecker(cfg, "1.1.0", checkFile)

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	res, ok := c.CheckOnStart(context.Background())
	require.True(t, ok)
	assert.True(t, res.Available)
	assert.Equal(t, "9.9.9", res.Latest)

	// Within the interval the feed is not consulted again.
	c.now = func() time.Time { return now.Add(30 * time.Minute) }
	_, ok = c.CheckOnStart(context.Background())
	assert.False(t, ok)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	c.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, ok = c.CheckOnStart(context.Background())
	assert.True(t, ok)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCheckOnStartDisabledOrFailing(t *testing.T) {
	var calls int32
	ts := feedServer(t, "", 503, &calls)
	path := filepath.Join(t.TempDir(), "check.txt")

	off := NewChecker(types.UpdateConfig{URL: ts.URL}, "1.0.0", state.NewCheckFile(path))
	_, ok := off.CheckOnStart(context.Background())
	assert.False(t, ok)
	assert.NoFileExists(t, path)

	on := NewChecker(types.UpdateConfig{URL: ts.URL, OnStart: true}, "1.0.0", state.NewCheckFile(path))
	_, ok = on.CheckOnStart(context.Background())
	assert.False(t, ok)
	assert.FileExists(t, path, "failed checks are still recorded")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNewCheckerDefaults(t *testing.T) {
	c := NewChecker(types.UpdateConfig{}, "1.1.0", nil)
	assert.Equal(t, DefaultURL, c.cfg.URL)
	assert.Equal(t, DefaultPageURL, c.PageURL())
	assert.Equal(t, DefaultTimeout, c.cfg.Timeout)
	assert.Equal(t, DefaultInterval, c.cfg.Interval)
}

func TestOpenBrowser(t *testing.T) {
	var opened string
	old := browserCommand
	browserCommand = func(url string) *exec.Cmd {
		opened = url
		return exec.Command("true")
	}
	defer func() { browserCommand = old }()

	require.NoError(t, OpenBrowser("https://example.com"))
	assert.Equal(t, "https://example.com", opened)
}
