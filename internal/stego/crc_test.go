package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumZeroBytesFixture(t *testing.T) {
	data := make([]byte, 1024) // all 0x00, a known CRC32 fixture
	assert.Equal(t, uint32(0xEFB5AF2E), checksum(data))
}

func TestChecksumDiffersOnAnyBitFlip(t *testing.T) {
	data := []byte("some plaintext payload bytes")
	base := checksum(data)
	for i := range data {
		mutated := append([]byte(nil), data...)
		mutated[i] ^= 0x01
		assert.NotEqual(t, base, checksum(mutated), "bit flip at byte %d should change the checksum", i)
	}
}
