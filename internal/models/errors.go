package models

// TransportError reports that a backend could not be reached at all: a
// request could not be built, the connection failed or the body could not be
// read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError carries an error the backend itself reported, in the
// backend's own wording. The message is shown to the user verbatim.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// ValidationError rejects user input before any request leaves the gateway.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FormatError reports a backend response that arrived but could not be
// decoded into the expected shape.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }
