package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshalUnmarshalRoundTrip(t *testing.T) {
	h := &Header{
		Version: Version,
		Level:   Medium,
		Flags:   0,
		Offset:  1234,
		Size:    4096,
		Hash:    0xdeadbeef,
	}
	require.NoError(t, h.setName("payload.bin"))

	buf := h.Marshal()
	require.Len(t, buf, HeaderSize)

	got, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	require.NoError(t, ValidateHeader(got))

	assert.Equal(t, h.Version, got.Version)
	assert.Equal(t, h.Level, got.Level)
	assert.Equal(t, h.Offset, got.Offset)
	assert.Equal(t, h.Size, got.Size)
	assert.Equal(t, h.Hash, got.Hash)
	assert.Equal(t, "payload.bin", got.Filename())
}

func TestHeaderFilenameExactly32BytesHasNoTerminator(t *testing.T) {
	name := "123456789012345678901234567890123" // 33 chars — trimmed by setName check
	h := &Header{}
	err := h.setName(name)
	require.Error(t, err)

	name32 := name[:32]
	h2 := &Header{}
	require.NoError(t, h2.setName(name32))
	buf := h2.Marshal()
	got, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, name32, got.Filename())
}

func TestValidateHeaderRejectsBadSignature(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], "NOPE")
	h, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	err = ValidateHeader(h)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, InvalidOrCorrupt, serr.Kind)
}

func TestValidateHeaderRejectsBadVersion(t *testing.T) {
	h := &Header{Version: Version + 1}
	buf := h.Marshal()
	got, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	require.Error(t, ValidateHeader(got))
}

func TestValidateHeaderRejectsNonZeroReserved(t *testing.T) {
	h := &Header{Version: Version, Level: Low}
	buf := h.Marshal()
	buf[55] = 0x01 // poke a byte inside the reserved region
	got, err := UnmarshalHeader(buf)
	require.NoError(t, err)
	require.Error(t, ValidateHeader(got))
}

func TestNameTooLongRejected(t *testing.T) {
	h := &Header{}
	err := h.setName("this-name-is-definitely-longer-than-32-bytes.bin")
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, NameTooLong, serr.Kind)
}
