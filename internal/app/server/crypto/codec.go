package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cipher encrypts and decrypts the student name field with the process-wide
// RSA key pair. The key files are immutable once written, so the keys are
// held in memory for the lifetime of the process.
type Cipher struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// EncryptName encrypts name with RSA-OAEP(SHA-256) and returns the ciphertext
// hex-encoded for text-safe persistence. Output length is fixed by the key
// size: 256 bytes (512 hex characters) for a 2048-bit key.
func (c *Cipher) EncryptName(name string) (string, error) {
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, c.public, []byte(name), nil)
	if err != nil {
		return "", fmt.Errorf("encrypt name: %w", err)
	}
	return hex.EncodeToString(ciphertext), nil
}

// DecryptName is the inverse of EncryptName. Malformed hex or a ciphertext
// produced with a different key yields ErrDecryption.
func (c *Cipher) DecryptName(ciphertext string) (string, error) {
	raw, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, c.private, raw, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return string(plaintext), nil
}
