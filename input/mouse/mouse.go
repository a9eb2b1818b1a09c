// Package mouse sequences synthetic pointer events against a remote page:
// interpolated movement, button clicks and wheel scrolling with boundary
// clamping and confirmation polling.
package mouse

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/dtlw/simput/input"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Button identifies a mouse button on the wire.
type Button string

const (
	ButtonNone   Button = "none"
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

const (
	// defaultScrollTimeout bounds the scroll confirmation poll.
	defaultScrollTimeout = 30 * time.Second
	// scrollPollInterval is the quantum between viewport probes.
	scrollPollInterval = 50 * time.Millisecond
)

// MoveOptions controls cursor movement.
type MoveOptions struct {
	// Steps is the number of interpolated mouseMoved dispatches. Must be
	// positive; a nil options value means a single step.
	Steps int
}

// ClickOptions controls button events. A zero value means the left button.
type ClickOptions struct {
	Button Button
}

// Mouse tracks the logical cursor position and sequences pointer events
// through a borrowed page handle. Not safe for concurrent use; a page session
// has a single input owner.
type Mouse struct {
	page          input.Page
	x, y          int
	button        Button
	scrollTimeout time.Duration
	rng           *rand.Rand
}

// New returns a Mouse at position (0,0) with no button held.
func New(page input.Page) *Mouse {
	return &Mouse{
		page:          page,
		button:        ButtonNone,
		scrollTimeout: defaultScrollTimeout,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetScrollTimeout overrides the scroll confirmation ceiling.
func (m *Mouse) SetScrollTimeout(d time.Duration) {
	if d > 0 {
		m.scrollTimeout = d
	}
}

// Position returns the last committed logical cursor position.
func (m *Mouse) Position() (x, y int) { return m.x, m.y }

// Button returns the button currently held by Press, or ButtonNone.
func (m *Mouse) Button() Button { return m.button }

// Move moves the cursor to the absolute position (x, y), dispatching
// opts.Steps mouseMoved events that interpolate linearly from the current
// position. The logical position is committed to the target before the
// dispatch loop runs; a failed intermediate step aborts immediately and
// leaves the position at the target.
func (m *Mouse) Move(ctx context.Context, x, y int, opts *MoveOptions) error {
	if err := m.page.AssertOpen(); err != nil {
		return err
	}
	steps := 1
	if opts != nil {
		steps = opts.Steps
	}
	if steps <= 0 {
		return fmt.Errorf("move steps must be positive, got %d: %w", steps, input.ErrInvalidArgument)
	}
	originX, originY := m.x, m.y
	m.x, m.y = x, y
	for i := 1; i <= steps; i++ {
		err := m.page.SendEvent(ctx, input.DispatchMouseEvent, map[string]any{
			"x":    originX + (x-originX)*i/steps,
			"y":    originY + (y-originY)*i/steps,
			"type": "mouseMoved",
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Press dispatches a mousePressed event at the current position.
func (m *Mouse) Press(ctx context.Context, opts *ClickOptions) error {
	if err := m.page.AssertOpen(); err != nil {
		return err
	}
	button := buttonFrom(opts)
	m.button = button
	return m.page.SendEvent(ctx, input.DispatchMouseEvent, map[string]any{
		"x":          m.x,
		"y":          m.y,
		"type":       "mousePressed",
		"button":     string(button),
		"clickCount": 1,
	})
}

// Release dispatches a mouseReleased event at the current position. The
// button is taken from opts per call; it is not sticky from Press.
func (m *Mouse) Release(ctx context.Context, opts *ClickOptions) error {
	if err := m.page.AssertOpen(); err != nil {
		return err
	}
	m.button = ButtonNone
	return m.page.SendEvent(ctx, input.DispatchMouseEvent, map[string]any{
		"x":          m.x,
		"y":          m.y,
		"type":       "mouseReleased",
		"button":     string(buttonFrom(opts)),
		"clickCount": 1,
	})
}

// Click presses and releases with the same options.
func (m *Mouse) Click(ctx context.Context, opts *ClickOptions) error {
	if err := m.Press(ctx, opts); err != nil {
		return err
	}
	return m.Release(ctx, opts)
}

// ScrollUp scrolls the page up by distance pixels.
func (m *Mouse) ScrollUp(ctx context.Context, distance int) error {
	if distance < 0 {
		distance = -distance
	}
	_, _, err := m.scroll(ctx, -distance, 0)
	return err
}

// ScrollDown scrolls the page down by distance pixels.
func (m *Mouse) ScrollDown(ctx context.Context, distance int) error {
	if distance < 0 {
		distance = -distance
	}
	_, _, err := m.scroll(ctx, distance, 0)
	return err
}

// scroll dispatches a single wheel event with deltas clamped to the reachable
// scroll range, then polls the visual viewport until the target offset is
// observed or the confirmation ceiling elapses. It returns the clamped deltas
// it actually applied so callers can translate viewport-relative coordinates.
func (m *Mouse) scroll(ctx context.Context, deltaY, deltaX int) (int, int, error) {
	if err := m.page.AssertOpen(); err != nil {
		return 0, 0, err
	}
	content, err := m.page.ContentSize(ctx)
	if err != nil {
		return 0, 0, err
	}
	viewport, err := m.page.VisualViewport(ctx)
	if err != nil {
		return 0, 0, err
	}
	deltaX = maximumDistance(deltaX, viewport.PageX, content.Width)
	deltaY = maximumDistance(deltaY, viewport.PageY, content.Height)
	targetX := viewport.PageX + deltaX
	targetY := viewport.PageY + deltaY

	// Self-move re-asserts the cursor on screen before the wheel event.
	if err := m.Move(ctx, m.x, m.y, nil); err != nil {
		return 0, 0, err
	}
	err = m.page.SendEvent(ctx, input.DispatchMouseEvent, map[string]any{
		"x":      m.x,
		"y":      m.y,
		"type":   "mouseWheel",
		"deltaX": deltaX,
		"deltaY": deltaY,
	})
	if err != nil {
		return 0, 0, err
	}

	err = input.Retry(ctx, m.scrollTimeout, func(ctx context.Context) (input.Outcome, error) {
		vp, err := m.page.VisualViewport(ctx)
		if err != nil {
			return input.Outcome{}, err
		}
		if vp.PageX == targetX && vp.PageY == targetY {
			return input.Outcome{Done: true}, nil
		}
		return input.Outcome{Wait: scrollPollInterval}, nil
	})
	if err != nil {
		return 0, 0, err
	}
	m.x += deltaX
	m.y += deltaY
	return deltaX, deltaY, nil
}

// maximumDistance clamps a scroll delta so the resulting offset stays within
// [0, maximum]: overshoot below zero lands exactly at 0, overshoot past the
// maximum lands exactly at maximum.
func maximumDistance(distance, current, maximum int) int {
	result := current + distance
	if result < 0 {
		return distance - result
	}
	if result > maximum {
		return maximum - current
	}
	return distance
}

// scrollToBoundary scrolls just far enough that the given right/bottom
// coordinates fall inside the layout viewport, returning the deltas actually
// scrolled. It only ever scrolls further right or down; coordinates already
// in view are left alone. The asymmetry is intentional: it is used to bring
// an element below or past the fold into view, never to scroll back.
func (m *Mouse) scrollToBoundary(ctx context.Context, right, bottom int) (int, int, error) {
	if err := m.page.AssertOpen(); err != nil {
		return 0, 0, err
	}
	layout, err := m.page.LayoutViewport(ctx)
	if err != nil {
		return 0, 0, err
	}
	var deltaX, deltaY int
	if bottom > layout.ClientHeight {
		deltaY = bottom - layout.ClientHeight
	}
	if right > layout.ClientWidth {
		deltaX = right - layout.ClientWidth
	}
	if deltaX == 0 && deltaY == 0 {
		return 0, 0, nil
	}
	return m.scroll(ctx, deltaY, deltaX)
}

// boundingRect mirrors the serialized DOMRect fields we consume.
type boundingRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Find locates elements matching the CSS selector, picks the one at the
// 1-based position (clamped to the match count), scrolls it into view and
// moves the cursor to a uniformly random point inside its bounding box. The
// bounding rect is viewport-relative, so the point is translated by whatever
// the into-view scroll actually moved. Evaluation failures and empty matches
// both surface as element-not-found.
func (m *Mouse) Find(ctx context.Context, selector string, position int) error {
	if err := m.page.AssertOpen(); err != nil {
		return err
	}
	expression := fmt.Sprintf(
		"JSON.stringify(Array.from(document.querySelectorAll(%q)).map(e => e.getBoundingClientRect()))",
		selector,
	)
	value, err := m.page.Evaluate(ctx, expression)
	if err != nil {
		return fmt.Errorf("query %q failed (%v): %w", selector, err, input.ErrElementNotFound)
	}
	rects, err := decodeRects(value)
	if err != nil {
		return fmt.Errorf("query %q returned no usable result (%v): %w", selector, err, input.ErrElementNotFound)
	}
	if len(rects) == 0 {
		return fmt.Errorf("no element matches %q: %w", selector, input.ErrElementNotFound)
	}
	if position < 1 {
		position = 1
	}
	if position > len(rects) {
		position = len(rects)
	}
	rect := rects[position-1]

	left := int(math.Ceil(rect.Left))
	top := int(math.Ceil(rect.Top))
	right := int(math.Floor(rect.Right))
	bottom := int(math.Floor(rect.Bottom))
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	targetX := left + m.rng.Intn(right-left+1)
	targetY := top + m.rng.Intn(bottom-top+1)

	scrolledX, scrolledY, err := m.scrollToBoundary(ctx, right, bottom)
	if err != nil {
		return err
	}
	return m.Move(ctx, targetX-scrolledX, targetY-scrolledY, nil)
}

// decodeRects unwraps the JSON.stringify result (a JSON string holding a JSON
// array) into bounding rects.
func decodeRects(value []byte) ([]boundingRect, error) {
	var serialized string
	if err := json.Unmarshal(value, &serialized); err != nil {
		return nil, err
	}
	if serialized == "" {
		return nil, errors.New("empty result")
	}
	var rects []boundingRect
	if err := json.Unmarshal([]byte(serialized), &rects); err != nil {
		return nil, err
	}
	return rects, nil
}

func buttonFrom(opts *ClickOptions) Button {
	if opts == nil || opts.Button == "" {
		return ButtonLeft
	}
	return opts.Button
}
