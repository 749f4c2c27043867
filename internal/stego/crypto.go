package stego

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Format-fixed PBKDF2 parameters. Neither the iteration count nor the HMAC
// choice is stored in the header or varies across calls; changing either
// would be a breaking format revision.
const (
	keyRounds = 20000
	keyLen    = 32
	saltLen   = 16
	ivLen     = 16
)

// HashPassword returns SHA-256(password), the 32-byte value that is the
// actual input to PBKDF2 (not the raw password). The GUI pre-hashes before
// calling the core; the CLI does the same so both interop bit-compatibly.
func HashPassword(password []byte) [32]byte {
	return sha256.Sum256(password)
}

// deriveKey runs PBKDF2-HMAC-SHA-256 over the 32-byte password hash and a
// 16-byte salt for the format-fixed 20000 rounds, producing a 32-byte
// AES-256 key.
func deriveKey(passwordHash [32]byte, salt []byte) []byte {
	return pbkdf2.Key(passwordHash[:], salt, keyRounds, keyLen, sha256.New)
}

// pkcs7Pad appends PKCS#7 padding so the result is a multiple of
// aes.BlockSize. At least one padding byte is always added; a plaintext
// already block-aligned receives a full block of 0x10.
func pkcs7Pad(data []byte) []byte {
	padLen := aes.BlockSize - (len(data) % aes.BlockSize)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// cbcEncrypt encrypts plaintext (which must already be a multiple of
// aes.BlockSize) under key and iv using AES-256-CBC. Each call starts a
// fresh CBC chain from iv — by format design the header and the payload
// are independently encrypted from the same (key, iv), a documented
// weakness preserved here rather than fixed.
func cbcEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out, nil
}

// cbcDecrypt decrypts ciphertext (a multiple of aes.BlockSize) under key
// and iv using AES-256-CBC, starting a fresh CBC chain from iv.
func cbcDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, newErr(InvalidOrCorrupt, "ciphertext not block-aligned", nil)
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out, nil
}
