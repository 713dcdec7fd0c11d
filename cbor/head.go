package cbor

import "math"

// headSize returns the number of bytes needed to encode arg as the
// argument of an item head, choosing the narrowest form.
func headSize(arg uint64) int {
	switch {
	case arg <= uint64(addInfoDirect):
		return 1
	case arg <= math.MaxUint8:
		return 2
	case arg <= math.MaxUint16:
		return 3
	case arg <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// writeHead emits major/arg using the narrowest encoding, unless
// MinimalInts is disabled, in which case it always uses the full
// 8-byte form (grounded on CBORGenerator's WRITE_MINIMAL_INT_LONGS
// toggle).
func (e *Encoder) writeHead(major byte, arg uint64) error {
	if !e.features.has(MinimalInts) {
		return e.writeHeadFullWidth(major, arg)
	}
	sz := headSize(arg)
	if err := e.buf.ensureRoom(e.sink, sz); err != nil {
		return e.ioErr(err)
	}
	switch sz {
	case 1:
		e.buf.writeByte(makeByte(major, byte(arg)))
	case 2:
		e.buf.writeByte(makeByte(major, addInfoUint8))
		e.buf.writeByte(byte(arg))
	case 3:
		e.buf.writeByte(makeByte(major, addInfoUint16))
		e.buf.writeUint16(uint16(arg))
	case 5:
		e.buf.writeByte(makeByte(major, addInfoUint32))
		e.buf.writeUint32(uint32(arg))
	case 9:
		e.buf.writeByte(makeByte(major, addInfoUint64))
		e.buf.writeUint64(arg)
	}
	return nil
}

func (e *Encoder) writeHeadFullWidth(major byte, arg uint64) error {
	if err := e.buf.ensureRoom(e.sink, 9); err != nil {
		return e.ioErr(err)
	}
	e.buf.writeByte(makeByte(major, addInfoUint64))
	e.buf.writeUint64(arg)
	return nil
}

// writeIndefiniteHead emits a single byte opening an indefinite-length
// array, map, byte string, or text string.
func (e *Encoder) writeIndefiniteHead(major byte) error {
	if err := e.buf.ensureRoom(e.sink, 1); err != nil {
		return e.ioErr(err)
	}
	e.buf.writeByte(makeByte(major, addInfoIndefinite))
	return nil
}

func (e *Encoder) writeBreak() error {
	if err := e.buf.ensureRoom(e.sink, 1); err != nil {
		return e.ioErr(err)
	}
	e.buf.writeByte(breakByte)
	return nil
}

func (e *Encoder) writeRawByte(c byte) error {
	if err := e.buf.ensureRoom(e.sink, 1); err != nil {
		return e.ioErr(err)
	}
	e.buf.writeByte(c)
	return nil
}

func (e *Encoder) writeRawBytes(p []byte) error {
	if err := e.buf.ensureRoom(e.sink, len(p)); err != nil {
		return e.ioErr(err)
	}
	e.buf.write(p)
	return nil
}
