package cbor

// Major types, RFC 8949 §3.
const (
	majorUint     byte = 0
	majorNegInt   byte = 1
	majorBytes    byte = 2
	majorText     byte = 3
	majorArray    byte = 4
	majorMap      byte = 5
	majorTag      byte = 6
	majorSimple   byte = 7
)

// Additional-info values that select the argument width.
const (
	addInfoDirect     byte = 23
	addInfoUint8      byte = 24
	addInfoUint16     byte = 25
	addInfoUint32     byte = 26
	addInfoUint64     byte = 27
	addInfoIndefinite byte = 31
)

// Simple values living in major type 7.
const (
	simpleFalse byte = 20
	simpleTrue  byte = 21
	simpleNull  byte = 22
	simpleUndef byte = 23
	simpleF16   byte = 25
	simpleF32   byte = 26
	simpleF64   byte = 27
	simpleBreak byte = 31
)

// Tag numbers this encoder knows how to emit.
const (
	tagEpochDateTime    uint64 = 1
	tagPosBignum        uint64 = 2
	tagNegBignum        uint64 = 3
	tagDecimalFraction  uint64 = 4
	tagStringref        uint64 = 25
	tagSelfDescribeCBOR uint64 = 55799
)

// breakByte terminates an indefinite-length container or chunked string.
const breakByte byte = 0xFF

func makeByte(major, addInfo byte) byte { return (major << 5) | (addInfo & 0x1F) }

func getMajorType(b byte) byte { return b >> 5 }

func getAddInfo(b byte) byte { return b & 0x1F }

// indefiniteLength is the sentinel recorded as a frame's remaining
// count when a container was opened without a known size.
const indefiniteLength = -2
