package gamesense

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mousetris/internal/config"
	"github.com/vovakirdan/mousetris/internal/engine"
	"github.com/vovakirdan/mousetris/internal/haptics"
	"github.com/vovakirdan/mousetris/internal/registry"
	"github.com/vovakirdan/mousetris/internal/render"
)

// Compile-time interface checks.
var (
	_ engine.Sink      = (*Client)(nil)
	_ haptics.Vibrator = (*Client)(nil)
)

type request struct {
	Path string
	Body map[string]any
}

// fakeEngine records every request and answers with status.
type fakeEngine struct {
	mu       sync.Mutex
	requests []request
	status   int
}

func (f *fakeEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(data, &body)

	f.mu.Lock()
	f.requests = append(f.requests, request{Path: r.URL.Path, Body: body})
	status := f.status
	f.mu.Unlock()

	if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if status != http.StatusOK {
		_, _ = w.Write([]byte("engine says no"))
	}
}

func (f *fakeEngine) Requests() []request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request(nil), f.requests...)
}

func newTestClient(t *testing.T) (*Client, *fakeEngine) {
	t.Helper()
	fe := &fakeEngine{}
	srv := httptest.NewServer(fe)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{Address: strings.TrimPrefix(srv.URL, "http://")})
	require.NoError(t, err)
	return c, fe
}

func TestNewClientNeedsAddress(t *testing.T) {
	_, err := NewClient(Options{})
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(Options{Address: "127.0.0.1:1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultGameID, c.GameID())
	assert.Equal(t, "http://127.0.0.1:1", c.baseURL)
}

func TestRegister(t *testing.T) {
	c, fe := newTestClient(t)
	require.NoError(t, c.Register(context.Background()))

	reqs := fe.Requests()
	require.Len(t, reqs, 5)

	assert.Equal(t, "/game_metadata", reqs[0].Path)
	assert.Equal(t, "TETRIS_MOUSE", reqs[0].Body["game"])
	assert.Equal(t, "Tetris Mouse", reqs[0].Body["game_display_name"])

	bound := map[string]map[string]any{}
	for _, r := range reqs[1:] {
		assert.Equal(t, "/bind_game_event", r.Path)
		assert.Equal(t, true, r.Body["value_optional"])
		handlers := r.Body["handlers"].([]any)
		require.Len(t, handlers, 1)
		bound[r.Body["event"].(string)] = handlers[0].(map[string]any)
	}
	require.Len(t, bound, 4)

	short := bound[EventShortVibrate]
	assert.Equal(t, "tactile", short["device-type"])
	assert.Equal(t, "vibrate", short["mode"])
	assert.Equal(t, []any{map[string]any{"type": "custom", "length-ms": 200.0, "delay-ms": 0.0}}, short["pattern"])

	grand := bound[EventGrandVibrate]["pattern"].([]any)
	require.Len(t, grand, 3)
	assert.Equal(t, map[string]any{"type": "ti_predefined_doubleclick_100", "delay-ms": 350.0}, grand[1])

	screen := bound[EventDisplay]
	assert.Equal(t, "screened-128x36", screen["device-type"])
	assert.Equal(t, "one", screen["zone"])
	assert.Equal(t, "screen", screen["mode"])
	datas := screen["datas"].([]any)
	require.Len(t, datas, 1)
	d := datas[0].(map[string]any)
	assert.Equal(t, false, d["has-text"])
	assert.Len(t, d["image-data"], render.FrameSize)
	assert.NotContains(t, screen, "pattern")
}

func TestDisplay(t *testing.T) {
	c, fe := newTestClient(t)

	var f render.Frame
	f[0] = 0x80
	f[575] = 0xff
	require.NoError(t, c.Display(context.Background(), f))

	reqs := fe.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/game_event", reqs[0].Path)
	assert.Equal(t, EventDisplay, reqs[0].Body["event"])

	data := reqs[0].Body["data"].(map[string]any)
	assert.Equal(t, 100.0, data["value"])
	img := data["frame"].(map[string]any)["image-data-128x36"].([]any)
	require.Len(t, img, render.FrameSize)
	assert.Equal(t, 128.0, img[0])
	assert.Equal(t, 255.0, img[575])
	assert.Equal(t, 0.0, img[1])
}

func TestVibrations(t *testing.T) {
	c, fe := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.ShortBuzz(ctx))
	require.NoError(t, c.LongBuzz(ctx))
	require.NoError(t, c.GrandBuzz(ctx))

	var events []string
	for _, r := range fe.Requests() {
		assert.Equal(t, "/game_event", r.Path)
		data := r.Body["data"].(map[string]any)
		assert.NotContains(t, data, "frame")
		events = append(events, r.Body["event"].(string))
	}
	assert.Equal(t, []string{EventShortVibrate, EventLongVibrate, EventGrandVibrate}, events)
}

func TestUnregister(t *testing.T) {
	c, fe := newTestClient(t)
	require.NoError(t, c.Unregister(context.Background()))

	reqs := fe.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/remove_game", reqs[0].Path)
	assert.Equal(t, map[string]any{"game": "TETRIS_MOUSE"}, reqs[0].Body)
}

func TestStatusError(t *testing.T) {
	c, fe := newTestClient(t)
	fe.mu.Lock()
	fe.status = http.StatusInternalServerError
	fe.mu.Unlock()

	err := c.Display(context.Background(), render.Frame{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "/game_event", se.Path)
	assert.Contains(t, err.Error(), "engine says no")

	// Register stops at the first failure.
	assert.Error(t, c.Register(context.Background()))
	assert.Len(t, fe.Requests(), 2)
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{Address: srv.URL, Timeout: time.Minute})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.ShortBuzz(ctx), context.DeadlineExceeded)
}

func TestEventTimeoutBoundsFramesNotRegistration(t *testing.T) {
	const delay = 150 * time.Millisecond
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{Address: srv.URL, Timeout: time.Minute, EventTimeout: 20 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	err = c.Display(context.Background(), render.Frame{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, c.LongBuzz(context.Background()), context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*delay)

	// Registration only answers to the whole-request timeout.
	assert.NoError(t, c.Unregister(context.Background()))
}

func TestNewClientDefaultEventTimeout(t *testing.T) {
	c, err := NewClient(Options{Address: "127.0.0.1:1"})
	require.NoError(t, err)
	assert.Equal(t, DefaultEventTimeout, c.eventWait)
}

func TestDiscoverAddress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coreProps.json")

	_, err := DiscoverAddress(path)
	assert.ErrorIs(t, err, ErrNoAddress)

	require.NoError(t, os.WriteFile(path, []byte(`{"address":"127.0.0.1:51248","encrypted_address":"x"}`), 0o644))
	addr, err := DiscoverAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:51248", addr)

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	_, err = DiscoverAddress(path)
	assert.ErrorIs(t, err, ErrNoAddress)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	_, err = DiscoverAddress(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAddress)
}

func TestDefaultCorePropsPath(t *testing.T) {
	t.Setenv("PROGRAMDATA", "/data")
	assert.Equal(t, filepath.Join("/data", "SteelSeries", "SteelSeries Engine 3", "coreProps.json"), DefaultCorePropsPath())
}

func TestRegistrySink(t *testing.T) {
	fe := &fakeEngine{}
	srv := httptest.NewServer(fe)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.GameSense.Address = srv.URL
	ctx := context.Background()

	require.True(t, registry.Exists("gamesense"))
	out, err := registry.Create(ctx, "gamesense", registry.Deps{Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, out.Vibrator)

	require.NoError(t, out.Sink.Display(ctx, render.Frame{}))
	require.NoError(t, out.Vibrator.LongBuzz(ctx))
	require.NoError(t, out.Shutdown(ctx))

	reqs := fe.Requests()
	require.Len(t, reqs, 8)
	assert.Equal(t, "/remove_game", reqs[7].Path)
}

func TestRegistrySinkWithoutHaptics(t *testing.T) {
	fe := &fakeEngine{}
	srv := httptest.NewServer(fe)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.GameSense.Address = srv.URL
	cfg.Haptics.Enabled = false

	out, err := registry.Create(context.Background(), "gamesense", registry.Deps{Config: cfg})
	require.NoError(t, err)
	assert.Nil(t, out.Vibrator)
}

func TestRegistrySinkDiscoveryFailure(t *testing.T) {
	cfg := config.Default()
	cfg.GameSense.CoreProps = filepath.Join(t.TempDir(), "missing.json")

	_, err := registry.Create(context.Background(), "gamesense", registry.Deps{Config: cfg})
	assert.ErrorIs(t, err, ErrNoAddress)
}
