package cbor

import "math/big"

// WriteInt64 writes a signed integer value using the shortest possible
// encoding (unless MinimalInts has been disabled).
func (e *Encoder) WriteInt64(v int64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteInt64"); err != nil {
		return e.fail(err)
	}
	if err := e.writeIntHead(v); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

// WriteUint64 writes an unsigned integer value.
func (e *Encoder) WriteUint64(v uint64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteUint64"); err != nil {
		return e.fail(err)
	}
	if err := e.writeHead(majorUint, v); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

// writeIntHead emits the head for a signed integer without touching
// the container bookkeeping, so it can also be used inline for the
// exponent field of a decimal fraction.
func (e *Encoder) writeIntHead(v int64) error {
	if v >= 0 {
		return e.writeHead(majorUint, uint64(v))
	}
	return e.writeHead(majorNegInt, uint64(-1-v))
}

// WriteBool writes a boolean value.
func (e *Encoder) WriteBool(b bool) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteBool"); err != nil {
		return e.fail(err)
	}
	v := simpleFalse
	if b {
		v = simpleTrue
	}
	if err := e.writeRawByte(makeByte(majorSimple, v)); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

// WriteNil writes a CBOR null.
func (e *Encoder) WriteNil() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteNil"); err != nil {
		return e.fail(err)
	}
	if err := e.writeRawByte(makeByte(majorSimple, simpleNull)); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

// WriteUndefined writes a CBOR undefined value.
func (e *Encoder) WriteUndefined() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteUndefined"); err != nil {
		return e.fail(err)
	}
	if err := e.writeRawByte(makeByte(majorSimple, simpleUndef)); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

// WriteFloat64 writes a float64. When MinimalDoubles is enabled and f
// round-trips exactly through float32, the narrower 4-byte form is
// written instead of the full 8-byte form.
func (e *Encoder) WriteFloat64(f float64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteFloat64"); err != nil {
		return e.fail(err)
	}
	if e.features.has(MinimalDoubles) {
		if narrow := float32(f); float64(narrow) == f {
			if err := e.writeFloat32Head(narrow); err != nil {
				return e.fail(err)
			}
			e.afterValueWrite()
			return nil
		}
	}
	if err := e.writeFloat64Head(f); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

// WriteFloat32 writes a float32 value, always in its native 4-byte
// form (this encoder never emits binary16; see DESIGN.md).
func (e *Encoder) WriteFloat32(f float32) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteFloat32"); err != nil {
		return e.fail(err)
	}
	if err := e.writeFloat32Head(f); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

func (e *Encoder) writeFloat32Head(f float32) error {
	if err := e.buf.ensureRoom(e.sink, 5); err != nil {
		return e.ioErr(err)
	}
	e.buf.writeByte(makeByte(majorSimple, simpleF32))
	e.buf.writeUint32(float32Bits(f))
	return nil
}

func (e *Encoder) writeFloat64Head(f float64) error {
	if err := e.buf.ensureRoom(e.sink, 9); err != nil {
		return e.ioErr(err)
	}
	e.buf.writeByte(makeByte(majorSimple, simpleF64))
	e.buf.writeUint64(float64Bits(f))
	return nil
}

// writeTagHead emits a tag head without touching container
// bookkeeping; the tagged value that follows is what actually
// consumes the container's element slot.
func (e *Encoder) writeTagHead(tag uint64) error {
	return e.writeHead(majorTag, tag)
}

// WriteTag emits a tag number; the caller must immediately follow it
// with exactly one value write, which is what advances the container.
func (e *Encoder) WriteTag(tag uint64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteTag"); err != nil {
		return e.fail(err)
	}
	if err := e.writeTagHead(tag); err != nil {
		return e.fail(err)
	}
	return nil
}

// WriteBigInt writes an arbitrary-precision integer using tag 2
// (unsigned) or tag 3 (negative, encoded as -1-n per RFC 8949 §3.4.3).
func (e *Encoder) WriteBigInt(v *big.Int) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteBigInt"); err != nil {
		return e.fail(err)
	}
	if err := e.writeBigIntRaw(v); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}

func (e *Encoder) writeBigIntRaw(v *big.Int) error {
	tag := tagPosBignum
	mag := v
	if v.Sign() < 0 {
		tag = tagNegBignum
		mag = new(big.Int).Neg(v)
		mag.Sub(mag, big.NewInt(1))
	}
	if err := e.writeTagHead(tag); err != nil {
		return err
	}
	b := mag.Bytes()
	if err := e.writeHead(majorBytes, uint64(len(b))); err != nil {
		return err
	}
	return e.writeRawBytes(b)
}

// WriteDecimalFraction writes an arbitrary-precision decimal using tag
// 4: a two-element array [exponent, mantissa] where the represented
// value is mantissa * 10^exponent. scale is the conventional
// BigDecimal-style scale (value = unscaled * 10^-scale), so the
// encoded exponent is its negation.
func (e *Encoder) WriteDecimalFraction(unscaled *big.Int, scale int32) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("WriteDecimalFraction"); err != nil {
		return e.fail(err)
	}
	if err := e.writeTagHead(tagDecimalFraction); err != nil {
		return e.fail(err)
	}
	if err := e.writeHead(majorArray, 2); err != nil {
		return e.fail(err)
	}
	if err := e.writeIntHead(int64(-scale)); err != nil {
		return e.fail(err)
	}
	if unscaled.IsInt64() {
		if err := e.writeIntHead(unscaled.Int64()); err != nil {
			return e.fail(err)
		}
	} else if err := e.writeBigIntRaw(unscaled); err != nil {
		return e.fail(err)
	}
	e.afterValueWrite()
	return nil
}
