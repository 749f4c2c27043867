package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodedSizeIdentity(t *testing.T) {
	cases := []struct {
		level EncodingLevel
		bits  int
	}{
		{Low, 1},
		{Medium, 2},
		{High, 4},
	}
	for _, c := range cases {
		for n := 0; n < 64; n++ {
			want := (n*8 + c.bits - 1) / c.bits
			assert.Equal(t, want, EncodedSize(n, c.level), "n=%d level=%v", n, c.level)
		}
	}
}

func TestBitCodecRoundTrip(t *testing.T) {
	for _, level := range []EncodingLevel{Low, Medium, High} {
		src := []byte("the quick brown fox jumps over the lazy dog 0123456789")
		need := EncodedSize(len(src), level)
		buf := make([]byte, need+8) // a little headroom, left untouched

		require.NoError(t, EncodeBits(buf, src, level, 0))
		got, err := DecodeBits(buf, len(src), level, 0)
		require.NoError(t, err)
		assert.Equal(t, src, got)
	}
}

func TestBitCodecPreservesHighBits(t *testing.T) {
	// Every channel byte starts at 0xFF; only the low `level` bits should
	// change after encoding a single zero byte.
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xFF
	}
	require.NoError(t, EncodeBits(buf, []byte{0x00}, High, 0))
	for _, b := range buf[:2] {
		assert.Equal(t, byte(0xF0), b, "high nibble must be preserved")
	}
}

func TestBitCodecRejectsOutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	err := EncodeBits(buf, []byte{1, 2}, Low, 0)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, InputUnreadable, serr.Kind)

	_, err = DecodeBits(buf, 100, Low, 0)
	require.Error(t, err)
}
