// Package crypto owns the RSA key pair and the encryption of the student
// name field. The key pair is generated once per deployment, persisted to two
// PEM files and reloaded on every subsequent start; it is never rotated.
package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/youmark/pkcs8"
)

const (
	keySize = 2048

	privateKeyFile = "private_key.pem"
	publicKeyFile  = "public_key.pem"

	encryptedPrivatePEMType = "ENCRYPTED PRIVATE KEY"
	publicPEMType           = "PUBLIC KEY"
)

var (
	// ErrKeyUnavailable means the stored key pair cannot be used: the
	// passphrase is wrong or a key file is corrupt. Fatal at startup.
	ErrKeyUnavailable = errors.New("rsa key pair unavailable")

	// ErrDecryption means one ciphertext is malformed or was produced with a
	// different key. Recoverable per record.
	ErrDecryption = errors.New("name decryption failed")
)

// EnsureKeyPair loads the key pair from keysDir, generating and persisting a
// new one first if the private key file does not exist yet.
//
// Generation on first use has a benign race between concurrent processes: both
// may generate, the last writer wins, and every process then reloads the same
// files. Accepted for this workload instead of a dedicated lock.
func EnsureKeyPair(keysDir, passphrase string) (*Cipher, error) {
	privatePath := filepath.Join(keysDir, privateKeyFile)
	publicPath := filepath.Join(keysDir, publicKeyFile)

	if _, err := os.Stat(privatePath); errors.Is(err, fs.ErrNotExist) {
		if err := generateKeyPair(privatePath, publicPath, passphrase); err != nil {
			return nil, err
		}
	}

	private, err := loadPrivateKey(privatePath, passphrase)
	if err != nil {
		return nil, err
	}
	public, err := loadPublicKey(publicPath)
	if err != nil {
		return nil, err
	}

	return &Cipher{private: private, public: public}, nil
}

func generateKeyPair(privatePath, publicPath, passphrase string) error {
	private, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return fmt.Errorf("generate rsa key pair: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(privatePath), 0o700); err != nil {
		return fmt.Errorf("create keys dir: %w", err)
	}

	privDER, err := pkcs8.MarshalPrivateKey(private, []byte(passphrase), nil)
	if err != nil {
		return fmt.Errorf("marshal encrypted private key: %w", err)
	}
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  encryptedPrivatePEMType,
		Bytes: privDER,
	})
	if err := os.WriteFile(privatePath, privPEM, 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	if err != nil {
		return fmt.Errorf("marshal public key: %w", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  publicPEMType,
		Bytes: pubDER,
	})
	if err := os.WriteFile(publicPath, pubPEM, 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	return nil
}

func loadPrivateKey(path, passphrase string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read private key: %v", ErrKeyUnavailable, err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != encryptedPrivatePEMType {
		return nil, fmt.Errorf("%w: private key file is not an encrypted PEM block", ErrKeyUnavailable)
	}
	private, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt private key: %v", ErrKeyUnavailable, err)
	}
	return private, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read public key: %v", ErrKeyUnavailable, err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != publicPEMType {
		return nil, fmt.Errorf("%w: public key file is not a PEM block", ErrKeyUnavailable)
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %v", ErrKeyUnavailable, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrKeyUnavailable)
	}
	return rsaPub, nil
}
