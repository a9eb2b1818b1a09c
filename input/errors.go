package input

import "errors"

// Sentinel errors for the input engine. Callers match them with errors.Is;
// call sites wrap them with fmt.Errorf("...: %w", ...) to add detail.
var (
	// ErrCommunication signals a transport-level failure while talking to the
	// remote debugger.
	ErrCommunication = errors.New("communication failure")

	// ErrTimeout signals that an acknowledgement or confirmation did not
	// arrive within its deadline.
	ErrTimeout = errors.New("operation timed out")

	// ErrPageClosed signals that the borrowed page handle is no longer usable.
	ErrPageClosed = errors.New("page is closed")

	// ErrUnknownKey signals a key name absent from the key catalog.
	ErrUnknownKey = errors.New("unknown key")

	// ErrElementNotFound signals that a selector query produced nothing usable.
	ErrElementNotFound = errors.New("element not found")

	// ErrInvalidArgument signals a caller error such as a non-positive step count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEvaluation signals a failed script evaluation on the page.
	ErrEvaluation = errors.New("script evaluation failed")
)
