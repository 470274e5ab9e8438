package pixelforge

// ErrorCode is the error taxonomy of §4.1/§7: every verb that fails
// validation sets the context's sticky slot to one of these instead of
// taking effect.
type ErrorCode uint8

const (
	NoError ErrorCode = iota
	InvalidEnum
	InvalidValue
	StackOverflow
	StackUnderflow
	InvalidOperation
	OutOfMemory
)

// String names the error the way a debug build's DebugNoError/
// DebugInvalidEnum assertions would print it (§7).
func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "NoError"
	case InvalidEnum:
		return "InvalidEnum"
	case InvalidValue:
		return "InvalidValue"
	case StackOverflow:
		return "StackOverflow"
	case StackUnderflow:
		return "StackUnderflow"
	case InvalidOperation:
		return "InvalidOperation"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return "Unknown"
	}
}

// setError records err in the sticky slot, but only if no error is
// already pending (§7 "The slot stores the first error that occurred
// since the last get_error; later errors are dropped").
func (c *Context) setError(err ErrorCode) {
	if c.errorCode == NoError {
		c.errorCode = err
	}
}

// GetError returns the sticky error and clears the slot (§4.1 "get_error
// returns and clears").
func (c *Context) GetError() ErrorCode {
	e := c.errorCode
	c.errorCode = NoError
	return e
}
