// Package input defines the collaborator surface and shared utilities for the
// synthetic mouse and keyboard. The devices own no transport; they borrow a
// page handle that can dispatch raw input events, evaluate scripts and report
// layout metrics.
package input

import (
	"context"
	"encoding/json"
)

// Debugger methods used to dispatch synthetic input.
const (
	DispatchKeyEvent   = "Input.dispatchKeyEvent"
	DispatchMouseEvent = "Input.dispatchMouseEvent"
)

// Dispatcher sends a single input event to the remote debugger and blocks
// until it is acknowledged.
type Dispatcher interface {
	SendEvent(ctx context.Context, method string, params map[string]any) error
}

// Liveness checks that the borrowed page handle is still usable.
type Liveness interface {
	AssertOpen() error
}

// Evaluator runs a script expression on the page and returns its value as raw
// JSON.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (json.RawMessage, error)
}

// ContentSize is the full scrollable size of the page content.
type ContentSize struct {
	Width  int
	Height int
}

// Viewport is the current scroll offset of the visible area within the
// content.
type Viewport struct {
	PageX int
	PageY int
}

// LayoutViewport is the client size of the visible area.
type LayoutViewport struct {
	ClientWidth  int
	ClientHeight int
}

// Metrics reports page geometry needed for scroll clamping and confirmation.
type Metrics interface {
	ContentSize(ctx context.Context) (ContentSize, error)
	VisualViewport(ctx context.Context) (Viewport, error)
	LayoutViewport(ctx context.Context) (LayoutViewport, error)
}

// Conn is the minimal page surface the keyboard needs.
type Conn interface {
	Dispatcher
	Liveness
}

// Page is the full page surface the mouse needs.
type Page interface {
	Conn
	Metrics
	Evaluator
}
