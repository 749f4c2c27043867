package stego

// DecodeResult is the payload recovered by Decode: the plaintext bytes and
// the filename recovered from the header.
type DecodeResult struct {
	Payload  []byte
	Filename string
}

// Decode extracts and validates the preamble, header, and ciphertext
// from img's channel buffer. Writing the recovered payload to disk is
// left to the caller — file I/O is an external collaborator.
func Decode(img Image, passwordHash [32]byte) (*DecodeResult, error) {
	buf := img.Pix()

	// Step 1: extract preamble (salt, iv), both at level Low regardless
	// of the level the payload itself uses.
	salt, err := DecodeBits(buf, saltLen, Low, 0)
	if err != nil {
		return nil, newErr(InputUnreadable, "salt", err)
	}
	iv, err := DecodeBits(buf, ivLen, Low, EncodedSize(saltLen, Low))
	if err != nil {
		return nil, newErr(InputUnreadable, "iv", err)
	}

	// Step 2: derive key.
	key := deriveKey(passwordHash, salt)
	defer zero(key)

	// Step 3: extract and decrypt the header.
	encHeader, err := DecodeBits(buf, HeaderSize, Low, EncodedSize(saltLen+ivLen, Low))
	if err != nil {
		return nil, newErr(InputUnreadable, "header", err)
	}
	headerBytes, err := cbcDecrypt(key, iv, encHeader)
	if err != nil {
		return nil, invalidOrCorrupt()
	}
	hdr, err := UnmarshalHeader(headerBytes)
	if err != nil {
		return nil, invalidOrCorrupt()
	}

	// Step 4: validate header — signature, version, reserved bytes. A
	// single failure in any of these is reported uniformly.
	if err := ValidateHeader(hdr); err != nil {
		return nil, err
	}

	// Invariant (c): the recorded ciphertext region must fit the image.
	totalChannels := img.W() * img.H() * 4
	needed := EncodedSize(int(hdr.Size), hdr.Level)
	if int(hdr.Offset)+needed > totalChannels {
		return nil, invalidOrCorrupt()
	}
	if hdr.Size == 0 || hdr.Size%16 != 0 {
		return nil, invalidOrCorrupt()
	}

	// Step 5: extract and decrypt the payload with a fresh CBC stream
	// from the same (key, iv).
	encPayload, err := DecodeBits(buf, int(hdr.Size), hdr.Level, int(hdr.Offset))
	if err != nil {
		return nil, invalidOrCorrupt()
	}
	padded, err := cbcDecrypt(key, iv, encPayload)
	if err != nil {
		return nil, invalidOrCorrupt()
	}

	// Step 6: strip PKCS#7 padding. The reference behavior does not
	// additionally validate that the trailing `pad` bytes all equal
	// `pad` — preserved here, not hardened.
	pad := int(padded[len(padded)-1])
	if pad == 0 || pad > len(padded) {
		return nil, invalidOrCorrupt()
	}
	plaintext := padded[:len(padded)-pad]

	// Step 7: verify CRC32 over the unpadded plaintext.
	if checksum(plaintext) != hdr.Hash {
		return nil, invalidOrCorrupt()
	}

	// Step 8: recover the filename.
	return &DecodeResult{Payload: plaintext, Filename: hdr.Filename()}, nil
}
