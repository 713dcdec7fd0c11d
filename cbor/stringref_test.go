package cbor

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringrefShortStringsNeverQualify(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, WithStringref(true))
	require.NoError(t, e.StartArray(4))
	for _, s := range []string{"aa", "bb", "cc", "aa"} {
		require.NoError(t, e.WriteString(s))
	}
	require.NoError(t, e.EndArray())
	require.NoError(t, e.Close())

	// "aa" is 2 bytes, below the n<24 threshold of 3, so it never
	// qualifies for the table and the repeat is written out in full,
	// not as a tag-25 backreference.
	require.Equal(t, 0, bytes.Count(buf.Bytes(), []byte{0xd8, 0x19}))
}

func TestStringrefRepeatedLongEnoughStringBackreferences(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, WithStringref(true))
	require.NoError(t, e.StartArray(3))
	for _, s := range []string{"abc", "def", "abc"} {
		require.NoError(t, e.WriteString(s))
	}
	require.NoError(t, e.EndArray())
	require.NoError(t, e.Close())

	want, err := hex.DecodeString("83" + "63616263" + "63646566" + "d81900")
	require.NoError(t, err)
	require.Equal(t, want, buf.Bytes())
}

func TestStringrefLookupPrecedesInsertion(t *testing.T) {
	tbl := newStringrefTable()
	// A string that would qualify (n=0, byteLen=3) is only inserted
	// once, and repeated lookups of the same content resolve to the
	// same index rather than growing the table.
	tbl.maybeInsert("abc")
	tbl.maybeInsert("abc")
	require.Len(t, tbl.idx, 1)
	idx, ok := tbl.lookup("abc")
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestStringrefByteStringDefensiveCopy(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, WithStringref(true))
	payload := []byte("xyzxyz")
	require.NoError(t, e.StartArray(2))
	require.NoError(t, e.WriteBytes(payload))
	// Mutate the caller's slice after the first write; if the table
	// held a reference to the original backing array instead of a
	// copy, the second write's lookup would see the mutated content.
	copy(payload, "mutated")
	require.NoError(t, e.WriteBytes([]byte("xyzxyz")))
	require.NoError(t, e.EndArray())
	require.NoError(t, e.Close())

	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte{0xd8, 0x19}))
}
