package devtools

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// message is one protocol frame: a command (ID+Method+Params), a response
// (ID+Result/Error) or an unsolicited event (Method+Params, no ID).
type message struct {
	ID     int                 `json:"id,omitempty"`
	Method string              `json:"method,omitempty"`
	Params any                 `json:"params,omitempty"`
	Result jsoniter.RawMessage `json:"result,omitempty"`
	Error  *ProtocolError      `json:"error,omitempty"`
}

// ProtocolError is an error reported by the debugger itself, as opposed to a
// transport failure.
type ProtocolError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *ProtocolError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("protocol error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("protocol error %d: %s", e.Code, e.Message)
}
