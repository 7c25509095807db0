package envcast

import "errors"

var (
	ErrMissingKey = errors.New("envcast: missing key")
	ErrNotAnInt   = errors.New("envcast: not an int")
	ErrNotANumber = errors.New("envcast: not a number")
	ErrNotAllowed = errors.New("envcast: not allowed")
)

// Error reports why the value of an environment variable could not be used.
// It renders as "[KEY]: reason" and unwraps to one of the sentinels above,
// so callers can match it with errors.Is.
type Error struct {
	Key    string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return "[" + e.Key + "]: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

// Missing returns the error for a key the source does not have.
func Missing(key string) error {
	return &Error{Key: key, Reason: "env variable not found", Err: ErrMissingKey}
}

// Wrap attaches key to a failure returned by one of the casting primitives,
// storing the primitive's sentinel in Err. A nil err yields nil.
func Wrap(key string, err error) error {
	if err == nil {
		return nil
	}
	e := &Error{Key: key, Reason: err.Error(), Err: err}
	var ce *castError
	if errors.As(err, &ce) {
		e.Err = ce.err
	}
	return e
}

// castError is what the casting primitives return: a human reason that
// unwraps to a sentinel.
type castError struct {
	reason string
	err    error
}

func (e *castError) Error() string { return e.reason }

func (e *castError) Unwrap() error { return e.err }
