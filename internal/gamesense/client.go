// Package gamesense talks to the SteelSeries GameSense engine over its local
// HTTP API: it registers the game, binds vibration and screen events, and
// pushes frames to the mouse's OLED.
package gamesense

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mousetris/internal/render"
)

// Defaults for Options.
const (
	DefaultGameID      = "TETRIS_MOUSE"
	DefaultDisplayName = "Tetris Mouse"
	DefaultTimeout     = 2 * time.Second

	// DefaultEventTimeout bounds a single frame or vibration post, which
	// runs on the tick goroutine. Three ticks at the default rate.
	DefaultEventTimeout = 200 * time.Millisecond
)

// Options configure a Client.
type Options struct {
	Address      string // host:port; required
	GameID       string
	DisplayName  string
	Timeout      time.Duration // Whole-request limit, registration included
	EventTimeout time.Duration // Limit for Display and the buzzes
	HTTPClient   *http.Client
	Logger       *log.Logger
}

// Client is a GameSense API client. It is safe for concurrent use.
type Client struct {
	baseURL     string
	game        string
	displayName string
	eventWait   time.Duration
	http        *http.Client
	logger      *log.Logger
}

// NewClient creates a client for the engine at opts.Address.
func NewClient(opts Options) (*Client, error) {
	addr := strings.TrimSpace(opts.Address)
	if addr == "" {
		return nil, ErrNoAddress
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	c := &Client{
		baseURL:     strings.TrimRight(addr, "/"),
		game:        opts.GameID,
		displayName: opts.DisplayName,
		eventWait:   opts.EventTimeout,
		http:        opts.HTTPClient,
		logger:      opts.Logger,
	}
	if c.game == "" {
		c.game = DefaultGameID
	}
	if c.displayName == "" {
		c.displayName = DefaultDisplayName
	}
	if c.eventWait <= 0 {
		c.eventWait = DefaultEventTimeout
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.http = &http.Client{Timeout: timeout}
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.logger = c.logger.WithPrefix("gamesense")
	return c, nil
}

// GameID returns the identifier the client registers under.
func (c *Client) GameID() string {
	return c.game
}

// Register announces the game and binds its vibration and display events.
func (c *Client) Register(ctx context.Context) error {
	meta := gameMetadata{Game: c.game, GameDisplayName: c.displayName}
	if err := c.post(ctx, "/game_metadata", meta); err != nil {
		return err
	}

	events := make([]string, 0, len(patterns))
	for ev := range patterns {
		events = append(events, ev)
	}
	sort.Strings(events)
	for _, ev := range events {
		if err := c.bind(ctx, ev, vibrateHandler(patterns[ev]...)); err != nil {
			return err
		}
	}

	screen := handler{
		DeviceType: "screened-128x36",
		Zone:       "one",
		Mode:       "screen",
		// Empty image; each event supplies its own frame.
		Datas: []screenData{{HasText: false, ImageData: make([]int, render.FrameSize)}},
	}
	if err := c.bind(ctx, EventDisplay, screen); err != nil {
		return err
	}

	c.logger.Debug("registered", "game", c.game, "events", len(events)+1)
	return nil
}

func (c *Client) bind(ctx context.Context, event string, h handler) error {
	return c.post(ctx, "/bind_game_event", binding{
		Game:          c.game,
		Event:         event,
		ValueOptional: true,
		Handlers:      []handler{h},
	})
}

// Unregister removes the game and its bindings from the engine.
func (c *Client) Unregister(ctx context.Context) error {
	return c.post(ctx, "/remove_game", gameRef{Game: c.game})
}

// Display shows f on the mouse screen.
func (c *Client) Display(ctx context.Context, f render.Frame) error {
	return c.event(ctx, gameEvent{
		Game:  c.game,
		Event: EventDisplay,
		Data: eventData{
			Value: eventValue,
			Frame: &frameData{ImageData: f.Ints()},
		},
	})
}

// ShortBuzz plays the short vibration.
func (c *Client) ShortBuzz(ctx context.Context) error {
	return c.fire(ctx, EventShortVibrate)
}

// LongBuzz plays the long vibration.
func (c *Client) LongBuzz(ctx context.Context) error {
	return c.fire(ctx, EventLongVibrate)
}

// GrandBuzz plays the game-over vibration.
func (c *Client) GrandBuzz(ctx context.Context) error {
	return c.fire(ctx, EventGrandVibrate)
}

func (c *Client) fire(ctx context.Context, event string) error {
	return c.event(ctx, gameEvent{
		Game:  c.game,
		Event: event,
		Data:  eventData{Value: eventValue},
	})
}

// event posts to /game_event under the per-event deadline.
func (c *Client) event(ctx context.Context, ev gameEvent) error {
	ctx, cancel := context.WithTimeout(ctx, c.eventWait)
	defer cancel()
	return c.post(ctx, "/game_event", ev)
}

// StatusError reports a non-200 response from the engine.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gamesense: %s: status %d: %s", e.Path, e.Status, e.Body)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gamesense: encode %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gamesense: %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gamesense: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
