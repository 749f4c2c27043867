package stego

import (
	"crypto/rand"
	"io"
	"path/filepath"
)

// EncodeRequest bundles the inputs to Encode: the payload bytes (already
// read from disk by the caller — file I/O is an external collaborator),
// the original filename (for the header's name field), the 32-byte
// password hash, and the requested encoding level for the ciphertext
// block.
type EncodeRequest struct {
	Payload      []byte
	Filename     string
	PasswordHash [32]byte
	Level        EncodingLevel
}

// preambleEncodedSize is the conservative capacity reservation the format
// uses for the region before the ciphertext: encoded_size(sizeof(Header)+32,
// Low), i.e. the 768 channel bytes that salt+iv+header (96 bytes) occupy at
// Low. MaxPayloadSize subtracts this channel-byte count from a capacity
// counted in payload bytes, so it reserves more than the preamble needs.
// Changing it would change which payloads a given image accepts, which
// would need a version bump, so the arithmetic is kept bit-for-bit as is.
func preambleEncodedSize() int {
	return EncodedSize(HeaderSize+32, Low)
}

// MaxPayloadSize returns the maximum padded ciphertext size the format
// will accept for an image with totalChannels channel bytes at the given
// level — the same arithmetic Encode uses for its capacity check,
// exposed so callers (e.g. the CLI's "info" command) can report it
// without duplicating the formula.
func MaxPayloadSize(totalChannels int, level EncodingLevel) int {
	maxSize := totalChannels/EncodedSize(1, level) - preambleEncodedSize()
	if maxSize < 0 {
		return 0
	}
	return maxSize
}

// Encode writes salt, iv, the encrypted header, and the encrypted
// ciphertext into img's channel buffer. It does not persist img; the
// caller (internal/cli, through raster.Image.Save) is responsible for
// saving it after Encode returns nil.
func Encode(img Image, req EncodeRequest) error {
	if !req.Level.valid() {
		return newErr(InvalidOrCorrupt, "invalid encoding level", nil)
	}

	basename := filepath.Base(req.Filename)
	if len(basename) > nameSize {
		return newErr(NameTooLong, basename, nil)
	}

	// Step 1: capacity check.
	n := len(req.Payload)
	paddedSize := n + 1
	if paddedSize%16 != 0 {
		paddedSize = (n/16 + 1) * 16
	}

	totalChannels := img.W() * img.H() * 4
	maxSize := MaxPayloadSize(totalChannels, req.Level)
	if paddedSize > maxSize {
		return &Error{Kind: PayloadTooLarge, Msg: "payload exceeds image capacity", MaxSize: maxSize}
	}

	// Step 2: read and pad (payload is already in memory; apply PKCS#7).
	padded := pkcs7Pad(req.Payload)
	if len(padded) != paddedSize {
		// pkcs7Pad always adds at least one byte and rounds to 16; this
		// should always agree with the hand-rolled paddedSize above.
		paddedSize = len(padded)
	}

	// Step 3: randomness — salt, iv, and a raw offset seed.
	salt := make([]byte, saltLen)
	iv := make([]byte, ivLen)
	var rBuf [4]byte
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return newErr(RandomnessFailure, "salt", err)
	}
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return newErr(RandomnessFailure, "iv", err)
	}
	if _, err := io.ReadFull(rand.Reader, rBuf[:]); err != nil {
		return newErr(RandomnessFailure, "offset seed", err)
	}
	r := uint32(rBuf[0]) | uint32(rBuf[1])<<8 | uint32(rBuf[2])<<16 | uint32(rBuf[3])<<24

	// Step 4: offset placement. base shifts the ciphertext past the
	// preamble+header region; span confines it to the remaining window.
	// The modulo bias this introduces is not security relevant: offset is
	// stored in the header in the clear, not a secret.
	base := preambleEncodedSize()
	span := EncodedSize(maxSize-paddedSize, req.Level)
	var offset uint32
	if span > 0 {
		offset = uint32(base) + r%uint32(span)
	} else {
		offset = uint32(base)
	}

	// Step 5: integrity over the unpadded plaintext.
	hash := checksum(req.Payload)

	// Step 6: header assembly.
	hdr := &Header{
		Version: Version,
		Level:   req.Level,
		Flags:   0,
		Offset:  offset,
		Size:    uint32(paddedSize),
		Hash:    hash,
	}
	if err := hdr.setName(basename); err != nil {
		return err
	}

	// Step 7: key derivation.
	key := deriveKey(req.PasswordHash, salt)
	defer zero(key)

	// Step 8: encrypt header and payload as two independent CBC streams,
	// both initialized from iv.
	encHeader, err := cbcEncrypt(key, iv, hdr.Marshal())
	if err != nil {
		return newErr(InvalidOrCorrupt, "header encryption", err)
	}
	encPayload, err := cbcEncrypt(key, iv, padded)
	if err != nil {
		return newErr(InvalidOrCorrupt, "payload encryption", err)
	}
	zero(padded)

	// Step 9: embed salt, iv, header, ciphertext at their respective
	// offsets and levels.
	buf := img.Pix()
	if err := EncodeBits(buf, salt, Low, 0); err != nil {
		return err
	}
	if err := EncodeBits(buf, iv, Low, EncodedSize(saltLen, Low)); err != nil {
		return err
	}
	if err := EncodeBits(buf, encHeader, Low, EncodedSize(saltLen+ivLen, Low)); err != nil {
		return err
	}
	if err := EncodeBits(buf, encPayload, req.Level, int(offset)); err != nil {
		return err
	}

	return nil
}
