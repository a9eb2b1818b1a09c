package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger records raw protocol frames with optional file output.
type RawLogger interface {
	Log(outgoing bool, data []byte)
}

// rawLogger implements RawLogger with thread-safe output.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

const rawFrameLimit = 512

// Log emits a single-line frame log with timestamp and direction.
// outgoing=true means client->browser, outgoing=false means browser->client.
func (r *rawLogger) Log(outgoing bool, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	dir := "B->C"
	if outgoing {
		dir = "C->B"
	}

	frame := data
	truncated := ""
	if len(frame) > rawFrameLimit {
		frame = frame[:rawFrameLimit]
		truncated = fmt.Sprintf(" (+%d bytes)", len(data)-rawFrameLimit)
	}

	line := fmt.Sprintf("%s %s frame: %s%s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		frame,
		truncated)

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
