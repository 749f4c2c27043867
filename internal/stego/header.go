package stego

import "encoding/binary"

const (
	// HeaderSize is the fixed serialized size of Header, in bytes.
	HeaderSize = 64

	// Version is the only format version this codec understands.
	Version uint16 = 1

	nameSize     = 32
	reservedSize = 12
)

var signature = [4]byte{'H', 'I', 'D', 'E'}

// Header is the 64-byte little-endian container header. It is never
// relied upon to match Go's native struct layout — Marshal/Unmarshal do
// explicit byte-order serialization, as the format requires for
// portability across hosts.
type Header struct {
	Version uint16
	Level   EncodingLevel
	Flags   uint8
	Offset  uint32
	Size    uint32
	Hash    uint32
	Name    [nameSize]byte

	// sigOK and reserved are populated only by UnmarshalHeader, for
	// ValidateHeader's use. A Header built for encoding never sets them;
	// Marshal always emits the correct signature and a zero reserved
	// region regardless.
	sigOK    bool
	reserved [reservedSize]byte
}

// Marshal serializes h into its 64-byte little-endian wire form.
func (h *Header) Marshal() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], signature[:])
	binary.LittleEndian.PutUint16(buf[4:6], h.Version)
	buf[6] = byte(h.Level)
	buf[7] = h.Flags
	binary.LittleEndian.PutUint32(buf[8:12], h.Offset)
	binary.LittleEndian.PutUint32(buf[12:16], h.Size)
	binary.LittleEndian.PutUint32(buf[16:20], h.Hash)
	copy(buf[20:20+nameSize], h.Name[:])
	// buf[52:64] (reserved) is already zero.
	return buf
}

// UnmarshalHeader parses a 64-byte buffer into a Header without validating
// any invariant; validation is the caller's job (see ValidateHeader), so
// that decode failures can be uniformly reported as InvalidOrCorrupt
// regardless of which specific check failed.
func UnmarshalHeader(buf []byte) (*Header, error) {
	if len(buf) != HeaderSize {
		return nil, newErr(InvalidOrCorrupt, "wrong header size", nil)
	}
	h := &Header{}
	h.Version = binary.LittleEndian.Uint16(buf[4:6])
	h.Level = EncodingLevel(buf[6])
	h.Flags = buf[7]
	h.Offset = binary.LittleEndian.Uint32(buf[8:12])
	h.Size = binary.LittleEndian.Uint32(buf[12:16])
	h.Hash = binary.LittleEndian.Uint32(buf[16:20])
	copy(h.Name[:], buf[20:20+nameSize])
	h.sigOK = buf[0] == signature[0] && buf[1] == signature[1] && buf[2] == signature[2] && buf[3] == signature[3]
	copy(h.reserved[:], buf[52:52+reservedSize])
	return h, nil
}

// ValidateHeader checks a valid signature, the supported version, an
// all-zero reserved region, and a recognized level. A single failure in
// any of these is reported uniformly as InvalidOrCorrupt, never
// distinguished to the caller.
func ValidateHeader(h *Header) error {
	if !h.sigOK {
		return invalidOrCorrupt()
	}
	if h.Version != Version {
		return invalidOrCorrupt()
	}
	for _, r := range h.reserved {
		if r != 0 {
			return invalidOrCorrupt()
		}
	}
	if !h.Level.valid() {
		return invalidOrCorrupt()
	}
	return nil
}

// Filename interprets Name as ASCII up to the first zero byte, or the full
// 32 bytes if no terminator is present.
func (h *Header) Filename() string {
	if h.Name[nameSize-1] != 0 {
		return string(h.Name[:])
	}
	i := 0
	for i < nameSize && h.Name[i] != 0 {
		i++
	}
	return string(h.Name[:i])
}

// setName copies basename into Name, zero-padding the remainder. It
// rejects names longer than the 32-byte field.
func (h *Header) setName(basename string) error {
	if len(basename) > nameSize {
		return newErr(NameTooLong, basename, nil)
	}
	var buf [nameSize]byte
	copy(buf[:], basename)
	h.Name = buf
	return nil
}
