package orgchart

import "fmt"

// MalformedInputError reports tabular text that cannot be ingested.
// Line is 1-based and zero when the failure is not tied to a row.
type MalformedInputError struct {
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed input: line %d: %s", e.Line, e.Reason)
	}
	return "malformed input: " + e.Reason
}

// DecodeError reports a snapshot blob that is not valid JSON or has an unexpected shape.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode snapshot: %s: %v", e.Reason, e.Err)
	}
	return "decode snapshot: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
