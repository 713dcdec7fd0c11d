package cbor

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func encodeOne(t *testing.T, write func(e *Encoder) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := write(e); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

func TestRFCScalarVectors(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		fn   func(e *Encoder) error
	}{
		{"zero", "00", func(e *Encoder) error { return e.WriteInt64(0) }},
		{"minus-one", "20", func(e *Encoder) error { return e.WriteInt64(-1) }},
		{"one-million", "1a000f4240", func(e *Encoder) error { return e.WriteInt64(1000000) }},
		{"text-ietf", "6449455446", func(e *Encoder) error { return e.WriteString("IETF") }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := encodeOne(t, c.fn)
			want, err := hex.DecodeString(c.hex)
			if err != nil {
				t.Fatalf("bad hex fixture: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("got % x, want % x", got, want)
			}
		})
	}
}

func TestSizedObjectRoundTripHex(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error {
		if err := e.StartMap(1); err != nil {
			return err
		}
		if err := e.WriteFieldName("a"); err != nil {
			return err
		}
		if err := e.WriteInt64(1); err != nil {
			return err
		}
		return e.EndMap()
	})
	want, _ := hex.DecodeString("a1616101")
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestIndefiniteArrayOfBooleans(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error {
		if err := e.StartArray(-1); err != nil {
			return err
		}
		if err := e.WriteBool(true); err != nil {
			return err
		}
		if err := e.WriteBool(true); err != nil {
			return err
		}
		return e.EndArray()
	})
	want, _ := hex.DecodeString("9ff5f5ff")
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestSequenceOfTopLevelItems(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.WriteInt64(1); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteInt64(2); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteString("x"); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	// three independent well-formed items back to back, no wrapper container
	want, _ := hex.DecodeString("0102" + "6178")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestFieldNameOutsideMapRejected(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.StartArray(1); err != nil {
		t.Fatal(err)
	}
	err := e.WriteFieldName("x")
	if err == nil {
		t.Fatal("expected error writing a field name inside an array")
	}
	if _, ok := err.(*ContextError); !ok {
		t.Fatalf("expected *ContextError, got %T", err)
	}
}

func TestPoisonedAfterFirstError(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.EndArray(); err == nil {
		t.Fatal("expected error closing an array that was never opened")
	}
	if err := e.WriteInt64(1); err == nil {
		t.Fatal("expected the encoder to stay poisoned after the first error")
	}
}

func TestDoubleCloseIsNoop(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.WriteInt64(1); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}

func TestSelfDescribeTagPrecedesContent(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, WithSelfDescribeTag(true))
	if err := e.WriteInt64(0); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	want, _ := hex.DecodeString("d9d9f700")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestArraySizeMismatchOnEnd(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.StartArray(2); err != nil {
		t.Fatal(err)
	}
	if err := e.WriteInt64(1); err != nil {
		t.Fatal(err)
	}
	err := e.EndArray()
	if err == nil {
		t.Fatal("expected a size mismatch error")
	}
	if _, ok := err.(*SizeMismatchError); !ok {
		t.Fatalf("expected *SizeMismatchError, got %T", err)
	}
}
