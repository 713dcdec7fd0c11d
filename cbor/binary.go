package cbor

import "io"

// WriteBytes writes a byte string value. If stringref backreferences
// are enabled and b has already been written and qualifies for the
// table, a tag-25 reference is written instead of the literal bytes.
func (e *Encoder) WriteBytes(b []byte) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteBytes"); err != nil {
		return e.fail(err)
	}

	if e.features.has(Stringref) && len(b) > 0 {
		if idx, ok := e.byteRefs.lookup(string(b)); ok {
			if err := e.writeStringrefTag(idx); err != nil {
				return e.fail(err)
			}
			e.afterValueWrite()
			return nil
		}
	}

	if err := e.writeHead(majorBytes, uint64(len(b))); err != nil {
		return e.fail(err)
	}
	if err := e.writeRawBytes(b); err != nil {
		return e.fail(err)
	}
	if e.features.has(Stringref) {
		e.byteRefs.maybeInsert(string(b))
	}
	e.afterValueWrite()
	return nil
}

// WriteBytesFrom streams exactly length bytes from r as a definite-
// length byte string. It reports a SizeMismatchError if r produces
// fewer bytes than declared before returning io.EOF.
//
// Streamed binary is never entered into the stringref table: doing so
// would require buffering the entire payload up front, defeating the
// purpose of streaming it (mirrors CBORGenerator.writeBinary's
// requirement to fully buffer only when stringrefs are active, which
// this API sidesteps by simply not deduplicating streamed payloads).
func (e *Encoder) WriteBytesFrom(r io.Reader, length int64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteBytesFrom"); err != nil {
		return e.fail(err)
	}
	if length < 0 {
		return e.fail(&ArgumentError{Msg: "WriteBytesFrom: length must not be negative"})
	}
	if err := e.writeHead(majorBytes, uint64(length)); err != nil {
		return e.fail(err)
	}

	var written int64
	chunk := make([]byte, 32*1024)
	for written < length {
		want := int64(len(chunk))
		if remaining := length - written; remaining < want {
			want = remaining
		}
		n, err := r.Read(chunk[:want])
		if n > 0 {
			if werr := e.writeRawBytes(chunk[:n]); werr != nil {
				return e.fail(werr)
			}
			written += int64(n)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return e.fail(&IoError{Cause: err})
		}
	}
	if written != length {
		return e.fail(&SizeMismatchError{Wanted: length, Got: written})
	}
	e.afterValueWrite()
	return nil
}
