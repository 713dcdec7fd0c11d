// Package cbor implements a streaming, allocation-conscious CBOR
// (RFC 8949) encoder. It is the hard core of a larger token-event
// pipeline shared with sibling binary codecs; decoding is treated as
// an external collaborator and is not implemented here (tests use
// github.com/fxamacker/cbor/v2 to verify round-trips).
//
// An Encoder is single-threaded and stateful: it tracks the stack of
// open arrays/maps, an optional stringref backreference table, and a
// pooled output buffer. Once any write returns an error the encoder is
// poisoned — every subsequent call except Close returns that same
// error immediately.
package cbor

import "io"

// Encoder writes a sequence of CBOR values to an underlying sink. See
// the package doc comment for its error and lifecycle model.
type Encoder struct {
	sink io.Writer
	buf  *outputBuffer

	stack []frame

	textRefs *stringrefTable
	byteRefs *stringrefTable

	features Feature
	maxDepth int

	selfDescribeWritten bool
	closed              bool
	err                 error
	finalBytesWritten   int64
}

// NewEncoder constructs an Encoder writing to w, configured by opts.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Encoder{
		sink:     w,
		buf:      getOutputBuffer(),
		features: cfg.resolveFeatures(),
		maxDepth: cfg.MaxDepth,
		stack:    []frame{{kind: frameRoot, remaining: indefiniteLength, declared: indefiniteLength}},
	}
	if e.features.has(Stringref) {
		e.textRefs = newStringrefTable()
		e.byteRefs = newStringrefTable()
	}
	return e
}

// checkAlive fails fast if the encoder is poisoned or closed, and
// lazily emits the self-describe tag before the very first item.
func (e *Encoder) checkAlive() error {
	if e.err != nil {
		return e.err
	}
	if e.closed {
		return e.fail(&ConstraintError{Msg: "encoder is closed"})
	}
	if !e.selfDescribeWritten {
		e.selfDescribeWritten = true
		if e.features.has(SelfDescribeTag) {
			if err := e.writeHead(majorTag, tagSelfDescribeCBOR); err != nil {
				return err
			}
		}
	}
	return nil
}

// fail records err as the encoder's sticky poison, if one is not
// already set, and returns it.
func (e *Encoder) fail(err error) error {
	if e.err == nil {
		e.err = err
	}
	return err
}

func (e *Encoder) ioErr(cause error) error {
	return e.fail(&IoError{Cause: cause})
}

// Err returns the error that poisoned the encoder, if any.
func (e *Encoder) Err() error { return e.err }

// Depth reports the number of currently open containers.
func (e *Encoder) Depth() int { return len(e.stack) - 1 }

// BytesWritten reports the total number of bytes encoded so far: those
// already handed to the sink plus anything still pending in the
// internal buffer.
func (e *Encoder) BytesWritten() int64 {
	if e.buf == nil {
		return e.finalBytesWritten
	}
	return e.buf.flushed + int64(e.buf.tail)
}

// Flush writes any buffered bytes to the sink. It does not close open
// containers.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.buf.flush(e.sink); err != nil {
		return e.ioErr(err)
	}
	return nil
}

// Close force-closes any open containers (writing the break byte for
// indefinite-length ones), flushes the buffer, releases it back to the
// pool, and closes the sink if it implements io.Closer. Close is a
// no-op on a second call.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	var closeErr error
	for len(e.stack) > 1 {
		f := e.top()
		e.stack = e.stack[:len(e.stack)-1]
		if f.remaining == indefiniteLength {
			if err := e.writeBreak(); err != nil {
				closeErr = err
				break
			}
		}
	}

	if flushErr := e.buf.flush(e.sink); flushErr != nil && closeErr == nil {
		closeErr = e.ioErr(flushErr)
	}

	e.finalBytesWritten = e.buf.flushed + int64(e.buf.tail)
	putOutputBuffer(e.buf)
	e.buf = nil

	if closer, ok := e.sink.(io.Closer); ok {
		if cerr := closer.Close(); cerr != nil && closeErr == nil {
			closeErr = e.ioErr(cerr)
		}
	}

	return closeErr
}
