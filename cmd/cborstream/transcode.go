package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/synadia-labs/cbor.go/cbor"
)

// transcodeJSON reads exactly one JSON value from r, token by token,
// and drives enc to produce the equivalent CBOR item. This is the
// "token producer" role spec.md treats as an external collaborator,
// made concrete for this command as a plain encoding/json.Decoder.
func transcodeJSON(r io.Reader, enc *cbor.Encoder) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return transcodeValue(dec, enc, tok)
}

func transcodeValue(dec *json.Decoder, enc *cbor.Encoder, tok json.Token) error {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '[':
			return transcodeArray(dec, enc)
		case '{':
			return transcodeObject(dec, enc)
		default:
			return fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return enc.WriteString(v)
	case bool:
		return enc.WriteBool(v)
	case nil:
		return enc.WriteNil()
	case json.Number:
		return transcodeNumber(enc, v)
	default:
		return fmt.Errorf("unsupported JSON token type %T", tok)
	}
}

func transcodeNumber(enc *cbor.Encoder, n json.Number) error {
	if i, err := n.Int64(); err == nil {
		return enc.WriteInt64(i)
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("decode number %q: %w", n, err)
	}
	return enc.WriteFloat64(f)
}

func transcodeArray(dec *json.Decoder, enc *cbor.Encoder) error {
	if err := enc.StartArray(-1); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if err := transcodeValue(dec, enc, tok); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return err
	}
	return enc.EndArray()
}

func transcodeObject(dec *json.Decoder, enc *cbor.Encoder) error {
	if err := enc.StartMap(-1); err != nil {
		return err
	}
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := nameTok.(string)
		if !ok {
			return fmt.Errorf("expected object field name, got %T", nameTok)
		}
		if err := enc.WriteFieldName(name); err != nil {
			return err
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		if err := transcodeValue(dec, enc, valTok); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return err
	}
	return enc.EndMap()
}
