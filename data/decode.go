package data

import "fmt"

// DecodeError reports a response body field that is missing or does not
// have the expected shape. Path is the dotted location of the offending
// field, e.g. "balance.current".
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Reason)
}

func missingField(path string) *DecodeError {
	return &DecodeError{Path: path, Reason: "missing required field"}
}
