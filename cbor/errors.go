package cbor

import "fmt"

// Error is implemented by every error kind this package returns. It
// extends error with a classification of whether the encoder can keep
// being used after the failure. None of the concrete kinds below
// currently report true; the encoder poisons itself unconditionally on
// the first error (see Encoder.fail), but the interface is kept
// resumable-aware so a future non-fatal kind can opt in without
// breaking callers that type-switch on Error.
type Error interface {
	error
	Resumable() bool
}

// contextError is implemented by kinds that can be annotated with the
// path (field name, array index) active when they occurred.
type contextError interface {
	withContext(ctx string) error
}

func addCtx(ctx, add string) string {
	if ctx == "" {
		return add
	}
	return add + "/" + ctx
}

// WrapError attaches the given context segments, innermost first, to
// err if it implements contextError. Errors that don't are returned
// unchanged.
func WrapError(err error, ctx ...string) error {
	ce, ok := err.(contextError)
	if !ok {
		return err
	}
	wrapped := err
	for _, c := range ctx {
		wrapped = ce.withContext(c)
		ce, ok = wrapped.(contextError)
		if !ok {
			break
		}
	}
	return wrapped
}

// ContextError reports that a write was attempted in a position the
// current container context does not allow (e.g. a value where a field
// name was expected).
type ContextError struct {
	Op  string
	Msg string
	ctx string
}

func (e *ContextError) Error() string {
	if e.ctx != "" {
		return fmt.Sprintf("cbor: %s: %s at %s", e.Op, e.Msg, e.ctx)
	}
	return fmt.Sprintf("cbor: %s: %s", e.Op, e.Msg)
}
func (e *ContextError) Resumable() bool { return false }
func (e *ContextError) withContext(ctx string) error {
	c := *e
	c.ctx = addCtx(c.ctx, ctx)
	return &c
}

// SizeMismatchError reports that a definite-length container or a
// streamed binary write did not receive the number of elements/bytes
// declared at open time.
type SizeMismatchError struct {
	Wanted, Got int64
	ctx         string
}

func (e *SizeMismatchError) Error() string {
	msg := fmt.Sprintf("cbor: size mismatch: wanted %d, got %d", e.Wanted, e.Got)
	if e.ctx != "" {
		return msg + " at " + e.ctx
	}
	return msg
}
func (e *SizeMismatchError) Resumable() bool { return false }
func (e *SizeMismatchError) withContext(ctx string) error {
	c := *e
	c.ctx = addCtx(c.ctx, ctx)
	return &c
}

// EncodingError reports that a value could not be represented, such as
// a string containing invalid UTF-8 under strict decoding policy.
type EncodingError struct {
	Msg string
	ctx string
}

func (e *EncodingError) Error() string {
	if e.ctx != "" {
		return fmt.Sprintf("cbor: encoding: %s at %s", e.Msg, e.ctx)
	}
	return fmt.Sprintf("cbor: encoding: %s", e.Msg)
}
func (e *EncodingError) Resumable() bool { return false }
func (e *EncodingError) withContext(ctx string) error {
	c := *e
	c.ctx = addCtx(c.ctx, ctx)
	return &c
}

// ArgumentError reports an invalid argument passed by the caller, such
// as a negative declared length.
type ArgumentError struct {
	Msg string
	ctx string
}

func (e *ArgumentError) Error() string {
	if e.ctx != "" {
		return fmt.Sprintf("cbor: argument: %s at %s", e.Msg, e.ctx)
	}
	return fmt.Sprintf("cbor: argument: %s", e.Msg)
}
func (e *ArgumentError) Resumable() bool { return false }
func (e *ArgumentError) withContext(ctx string) error {
	c := *e
	c.ctx = addCtx(c.ctx, ctx)
	return &c
}

// IoError wraps a failure returned by the underlying sink.
type IoError struct {
	Cause error
	ctx   string
}

func (e *IoError) Error() string {
	if e.ctx != "" {
		return fmt.Sprintf("cbor: io: %s at %s", e.Cause, e.ctx)
	}
	return fmt.Sprintf("cbor: io: %s", e.Cause)
}
func (e *IoError) Unwrap() error   { return e.Cause }
func (e *IoError) Resumable() bool { return false }
func (e *IoError) withContext(ctx string) error {
	c := *e
	c.ctx = addCtx(c.ctx, ctx)
	return &c
}

// ConstraintError reports a violated structural limit: nesting depth,
// a closed encoder reused, or a value written into a definite-length
// container that already holds its declared number of elements.
type ConstraintError struct {
	Msg string
	ctx string
}

func (e *ConstraintError) Error() string {
	if e.ctx != "" {
		return fmt.Sprintf("cbor: constraint: %s at %s", e.Msg, e.ctx)
	}
	return fmt.Sprintf("cbor: constraint: %s", e.Msg)
}
func (e *ConstraintError) Resumable() bool { return false }
func (e *ConstraintError) withContext(ctx string) error {
	c := *e
	c.ctx = addCtx(c.ctx, ctx)
	return &c
}
