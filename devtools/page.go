package devtools

import (
	"context"
	"errors"
	"fmt"
	"time"

	stdjson "encoding/json"

	"github.com/dtlw/simput/input"
)

// Page is a page handle over a debugger connection. It implements the full
// collaborator surface the input engine borrows (input.Page).
type Page struct {
	client *Client
}

var _ input.Page = (*Page)(nil)

// Page returns a page handle over the client connection.
func (c *Client) Page() *Page { return &Page{client: c} }

// AssertOpen fails fast when the underlying connection is gone.
func (p *Page) AssertOpen() error {
	if p.client.Closed() {
		return input.ErrPageClosed
	}
	return nil
}

// SendEvent dispatches one input event and blocks until acknowledged.
func (p *Page) SendEvent(ctx context.Context, method string, params map[string]any) error {
	_, err := p.client.SendCommand(ctx, method, params)
	return err
}

// evaluateResult mirrors the Runtime.evaluate response envelope.
type evaluateResult struct {
	Result struct {
		Type  string             `json:"type"`
		Value stdjson.RawMessage `json:"value"`
	} `json:"result"`
	ExceptionDetails *struct {
		Text      string `json:"text"`
		Exception *struct {
			Description string `json:"description"`
		} `json:"exception"`
	} `json:"exceptionDetails"`
}

// Evaluate runs an expression on the page and returns its value as raw JSON.
// Script exceptions and protocol rejections surface as evaluation errors.
func (p *Page) Evaluate(ctx context.Context, expression string) (stdjson.RawMessage, error) {
	raw, err := p.client.SendCommand(ctx, "Runtime.evaluate", map[string]any{
		"expression":    expression,
		"returnByValue": true,
	})
	if err != nil {
		var perr *ProtocolError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%v: %w", perr, input.ErrEvaluation)
		}
		return nil, err
	}
	var res evaluateResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode evaluate result: %w", err)
	}
	if res.ExceptionDetails != nil {
		detail := res.ExceptionDetails.Text
		if res.ExceptionDetails.Exception != nil {
			detail = res.ExceptionDetails.Exception.Description
		}
		return nil, fmt.Errorf("%s: %w", detail, input.ErrEvaluation)
	}
	return res.Result.Value, nil
}

// layoutMetrics mirrors the subset of Page.getLayoutMetrics we consume.
type layoutMetrics struct {
	CSSContentSize struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"cssContentSize"`
	CSSVisualViewport struct {
		PageX float64 `json:"pageX"`
		PageY float64 `json:"pageY"`
	} `json:"cssVisualViewport"`
	CSSLayoutViewport struct {
		ClientWidth  float64 `json:"clientWidth"`
		ClientHeight float64 `json:"clientHeight"`
	} `json:"cssLayoutViewport"`
}

func (p *Page) metrics(ctx context.Context) (*layoutMetrics, error) {
	raw, err := p.client.SendCommand(ctx, "Page.getLayoutMetrics", nil)
	if err != nil {
		return nil, err
	}
	var m layoutMetrics
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode layout metrics: %w", err)
	}
	return &m, nil
}

// ContentSize returns the full scrollable content size.
func (p *Page) ContentSize(ctx context.Context) (input.ContentSize, error) {
	m, err := p.metrics(ctx)
	if err != nil {
		return input.ContentSize{}, err
	}
	return input.ContentSize{
		Width:  int(m.CSSContentSize.Width),
		Height: int(m.CSSContentSize.Height),
	}, nil
}

// VisualViewport returns the current scroll offset.
func (p *Page) VisualViewport(ctx context.Context) (input.Viewport, error) {
	m, err := p.metrics(ctx)
	if err != nil {
		return input.Viewport{}, err
	}
	return input.Viewport{
		PageX: int(m.CSSVisualViewport.PageX),
		PageY: int(m.CSSVisualViewport.PageY),
	}, nil
}

// LayoutViewport returns the client size of the visible area.
func (p *Page) LayoutViewport(ctx context.Context) (input.LayoutViewport, error) {
	m, err := p.metrics(ctx)
	if err != nil {
		return input.LayoutViewport{}, err
	}
	return input.LayoutViewport{
		ClientWidth:  int(m.CSSLayoutViewport.ClientWidth),
		ClientHeight: int(m.CSSLayoutViewport.ClientHeight),
	}, nil
}

// Navigate loads the given URL in the page.
func (p *Page) Navigate(ctx context.Context, url string) error {
	raw, err := p.client.SendCommand(ctx, "Page.navigate", map[string]any{"url": url})
	if err != nil {
		return err
	}
	var res struct {
		ErrorText string `json:"errorText"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return fmt.Errorf("decode navigate result: %w", err)
	}
	if res.ErrorText != "" {
		return fmt.Errorf("navigate %s: %s: %w", url, res.ErrorText, input.ErrCommunication)
	}
	return nil
}

// WaitForReady polls document.readyState until the page reports complete.
func (p *Page) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return input.Retry(ctx, timeout, func(ctx context.Context) (input.Outcome, error) {
		value, err := p.Evaluate(ctx, "document.readyState")
		if err != nil {
			return input.Outcome{}, err
		}
		var state string
		if err := json.Unmarshal(value, &state); err != nil {
			return input.Outcome{}, fmt.Errorf("decode readyState: %w", err)
		}
		if state == "complete" {
			return input.Outcome{Done: true}, nil
		}
		return input.Outcome{Wait: 100 * time.Millisecond}, nil
	})
}

// Close tears down the underlying connection.
func (p *Page) Close() error { return p.client.Close() }
