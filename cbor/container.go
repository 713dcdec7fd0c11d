package cbor

const (
	frameRoot byte = iota
	frameArray
	frameMap
)

// frame tracks one open container. remaining counts item writes still
// owed before the container is complete; it holds indefiniteLength for
// containers opened without a declared size. For a map, remaining
// counts individual name/value writes, not pairs, so it starts at
// 2*declaredPairs.
type frame struct {
	kind       byte
	remaining  int64
	declared   int64
	expectName bool
}

func (e *Encoder) top() *frame { return &e.stack[len(e.stack)-1] }

// verifyValueWrite checks that a value write is permitted in the
// current container context: a map awaiting a field name rejects
// anything but writeFieldName, and a definite-length container that
// has already received its declared number of items rejects further
// writes.
func (e *Encoder) verifyValueWrite(op string) error {
	f := e.top()
	if f.kind == frameMap && f.expectName {
		return &ContextError{Op: op, Msg: "expected field name, got value"}
	}
	if f.remaining == 0 {
		return &ConstraintError{Msg: "container already holds its declared number of elements"}
	}
	return nil
}

// afterValueWrite records that one element was written to the current
// container, toggling map name/value expectation and decrementing the
// remaining counter for definite-length containers.
func (e *Encoder) afterValueWrite() {
	f := e.top()
	if f.kind == frameMap {
		f.expectName = !f.expectName
	}
	if f.remaining > 0 {
		f.remaining--
	}
}

func (e *Encoder) pushDepthCheck() error {
	if e.maxDepth > 0 && e.Depth() > e.maxDepth {
		return &ConstraintError{Msg: "container nesting exceeds configured MaxDepth"}
	}
	return nil
}

// StartArray opens an array with the given declared length. A negative
// length opens an indefinite-length array, terminated by EndArray.
func (e *Encoder) StartArray(length int64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("StartArray"); err != nil {
		return e.fail(err)
	}
	if length < 0 {
		if err := e.writeIndefiniteHead(majorArray); err != nil {
			return e.fail(err)
		}
	} else {
		if err := e.writeHead(majorArray, uint64(length)); err != nil {
			return e.fail(err)
		}
	}
	e.afterValueWrite()
	remaining := int64(indefiniteLength)
	if length >= 0 {
		remaining = length
	}
	e.stack = append(e.stack, frame{kind: frameArray, remaining: remaining, declared: remaining})
	if err := e.pushDepthCheck(); err != nil {
		return e.fail(err)
	}
	return nil
}

// EndArray closes the most recently opened array.
func (e *Encoder) EndArray() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	f := e.top()
	if f.kind != frameArray {
		return e.fail(&ContextError{Op: "EndArray", Msg: "no open array to close"})
	}
	if f.remaining > 0 {
		return e.fail(&SizeMismatchError{Wanted: f.declared, Got: f.declared - f.remaining})
	}
	if f.remaining == indefiniteLength {
		if err := e.writeBreak(); err != nil {
			return e.fail(err)
		}
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

// StartMap opens a map with the given declared number of key/value
// pairs. A negative count opens an indefinite-length map, terminated
// by EndMap.
func (e *Encoder) StartMap(pairs int64) error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	if err := e.verifyValueWrite("StartMap"); err != nil {
		return e.fail(err)
	}
	if pairs < 0 {
		if err := e.writeIndefiniteHead(majorMap); err != nil {
			return e.fail(err)
		}
	} else {
		if err := e.writeHead(majorMap, uint64(pairs)); err != nil {
			return e.fail(err)
		}
	}
	e.afterValueWrite()
	remaining := int64(indefiniteLength)
	if pairs >= 0 {
		remaining = pairs * 2
	}
	e.stack = append(e.stack, frame{kind: frameMap, remaining: remaining, declared: remaining, expectName: true})
	if err := e.pushDepthCheck(); err != nil {
		return e.fail(err)
	}
	return nil
}

// EndMap closes the most recently opened map.
func (e *Encoder) EndMap() error {
	if err := e.checkAlive(); err != nil {
		return err
	}
	f := e.top()
	if f.kind != frameMap {
		return e.fail(&ContextError{Op: "EndMap", Msg: "no open map to close"})
	}
	if !f.expectName {
		return e.fail(&ContextError{Op: "EndMap", Msg: "map closed after a field name with no value"})
	}
	if f.remaining > 0 {
		return e.fail(&SizeMismatchError{Wanted: f.declared / 2, Got: (f.declared - f.remaining) / 2})
	}
	if f.remaining == indefiniteLength {
		if err := e.writeBreak(); err != nil {
			return e.fail(err)
		}
	}
	e.stack = e.stack[:len(e.stack)-1]
	return nil
}
