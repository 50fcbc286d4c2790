package sim

// badRequestError signals a malformed operation request for 400 mapping.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

// ErrBadRequest constructs a badRequestError.
func ErrBadRequest(msg string) error { return badRequestError{msg: msg} }

// IsBadRequest reports whether err indicates a malformed request.
func IsBadRequest(err error) bool {
	_, ok := err.(badRequestError)
	return ok
}

// canceledError signals that a submission was abandoned before the tick
// loop ran it, for 503 mapping.
type canceledError struct{}

func (canceledError) Error() string { return "operation canceled before execution" }

// ErrCanceled constructs a canceledError.
func ErrCanceled() error { return canceledError{} }

// IsCanceled reports whether err indicates an abandoned submission.
func IsCanceled(err error) bool {
	_, ok := err.(canceledError)
	return ok
}
