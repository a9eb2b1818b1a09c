// Package devtools implements a synchronous command client for the browser
// remote-debugging protocol over a websocket, plus a page handle exposing the
// surfaces the input engine borrows.
package devtools

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"

	"github.com/dtlw/simput/input"
	"github.com/dtlw/simput/internal/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls transport behavior.
type Config struct {
	DialTimeout    time.Duration
	CommandTimeout time.Duration
	// Raw, when set, receives every frame in both directions.
	Raw log.RawLogger
}

func defaultConfig() Config {
	return Config{
		DialTimeout:    3 * time.Second,
		CommandTimeout: 5 * time.Second,
	}
}

// Client is a synchronous command client over one debugger websocket. Every
// SendCommand blocks until the matching response arrives; unsolicited
// protocol events are logged and dropped.
type Client struct {
	conn   *websocket.Conn
	logger *slog.Logger
	cfg    Config

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[int]chan *message
	nextID  int
	closed  bool

	done chan struct{}
	once sync.Once
}

// Dial connects to a debugger websocket URL (ws://host:port/devtools/page/...)
// and starts the read pump.
func Dial(ctx context.Context, url string, logger *slog.Logger, cfg *Config) (*Client, error) {
	c := defaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if logger == nil {
		logger = slog.Default()
	}
	dialer := websocket.Dialer{HandshakeTimeout: c.DialTimeout}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s (%v): %w", url, err, input.ErrCommunication)
	}
	client := &Client{
		conn:    conn,
		logger:  logger,
		cfg:     c,
		pending: make(map[int]chan *message),
		done:    make(chan struct{}),
	}
	go client.readPump()
	return client, nil
}

// readPump delivers responses to their waiters until the socket dies.
func (c *Client) readPump() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.shutdown()
			return
		}
		if c.cfg.Raw != nil {
			c.cfg.Raw.Log(false, data)
		}
		var m message
		if err := json.Unmarshal(data, &m); err != nil {
			c.logger.Warn("discarding unparseable frame", "error", err)
			continue
		}
		if m.ID == 0 {
			c.logger.Debug("protocol event", "method", m.Method)
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[m.ID]
		if ok {
			delete(c.pending, m.ID)
		}
		c.mu.Unlock()
		if ok {
			ch <- &m
		}
	}
}

// SendCommand sends one command and blocks until its response, the command
// timeout, context cancellation or connection loss.
func (c *Client) SendCommand(ctx context.Context, method string, params any) (jsoniter.RawMessage, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("send %s: %w", method, input.ErrPageClosed)
	}
	c.nextID++
	id := c.nextID
	ch := make(chan *message, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	payload, err := json.Marshal(message{ID: id, Method: method, Params: params})
	if err != nil {
		c.forget(id)
		return nil, fmt.Errorf("marshal %s: %w", method, err)
	}
	if c.cfg.Raw != nil {
		c.cfg.Raw.Log(true, payload)
	}
	c.writeMu.Lock()
	err = c.conn.WriteMessage(websocket.TextMessage, payload)
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return nil, fmt.Errorf("write %s (%v): %w", method, err, input.ErrCommunication)
	}

	timer := time.NewTimer(c.cfg.CommandTimeout)
	defer timer.Stop()
	select {
	case resp := <-ch:
		if resp.Error != nil {
			return nil, fmt.Errorf("%s: %w", method, resp.Error)
		}
		return resp.Result, nil
	case <-timer.C:
		c.forget(id)
		return nil, fmt.Errorf("no response to %s within %v: %w", method, c.cfg.CommandTimeout, input.ErrTimeout)
	case <-ctx.Done():
		c.forget(id)
		return nil, ctx.Err()
	case <-c.done:
		return nil, fmt.Errorf("connection lost during %s: %w", method, input.ErrPageClosed)
	}
}

// Close tears down the connection. Safe to call more than once.
func (c *Client) Close() error {
	c.shutdown()
	return nil
}

// Closed reports whether the connection is gone.
func (c *Client) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) shutdown() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) forget(id int) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
