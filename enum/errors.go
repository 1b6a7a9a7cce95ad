package enum

// OpError describes a recoverable failure of one enumeration step. It is the
// error type handed to Callbacks.ContinueOnError and surfaced by Err when the
// policy aborts. Callers can match the underlying cause with errors.Is, e.g.
// against fs.ErrPermission or fs.ErrNotExist.
type OpError struct {
	// Op identifies the failing step: "open", "read" or "stat".
	Op string

	// Path is the file or directory the step was applied to.
	Path string

	// Err is the underlying operating system error.
	Err error
}

func (e *OpError) Error() string {
	return "enum: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
