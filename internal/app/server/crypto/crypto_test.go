package crypto

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassphrase = "test-passphrase"

func TestEnsureKeyPair_GeneratesAndReloads(t *testing.T) {
	keysDir := filepath.Join(t.TempDir(), "keys")

	first, err := EnsureKeyPair(keysDir, testPassphrase)
	require.NoError(t, err)

	// Both files exist after generation.
	privPEM, err := os.ReadFile(filepath.Join(keysDir, privateKeyFile))
	require.NoError(t, err)
	assert.Contains(t, string(privPEM), "BEGIN ENCRYPTED PRIVATE KEY")
	pubPEM, err := os.ReadFile(filepath.Join(keysDir, publicKeyFile))
	require.NoError(t, err)
	assert.Contains(t, string(pubPEM), "BEGIN PUBLIC KEY")

	// A second call reloads the same pair: ciphertext from the first cipher
	// decrypts with the second.
	ciphertext, err := first.EncryptName("Ann")
	require.NoError(t, err)

	second, err := EnsureKeyPair(keysDir, testPassphrase)
	require.NoError(t, err)

	name, err := second.DecryptName(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
}

func TestEnsureKeyPair_WrongPassphrase(t *testing.T) {
	keysDir := filepath.Join(t.TempDir(), "keys")

	_, err := EnsureKeyPair(keysDir, testPassphrase)
	require.NoError(t, err)

	_, err = EnsureKeyPair(keysDir, "wrong")
	assert.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestEnsureKeyPair_CorruptPrivateKey(t *testing.T) {
	keysDir := filepath.Join(t.TempDir(), "keys")
	require.NoError(t, os.MkdirAll(keysDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(keysDir, privateKeyFile), []byte("not a pem"), 0o600))

	_, err := EnsureKeyPair(keysDir, testPassphrase)
	assert.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestCipher_RoundTrip(t *testing.T) {
	cipher, err := EnsureKeyPair(filepath.Join(t.TempDir(), "keys"), testPassphrase)
	require.NoError(t, err)

	names := []string{"Ann", "Émile Durkheim", "名前", "a"}
	for _, name := range names {
		ciphertext, err := cipher.EncryptName(name)
		require.NoError(t, err)

		got, err := cipher.DecryptName(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
}

func TestCipher_CiphertextLengthFixedByKeySize(t *testing.T) {
	cipher, err := EnsureKeyPair(filepath.Join(t.TempDir(), "keys"), testPassphrase)
	require.NoError(t, err)

	ciphertext, err := cipher.EncryptName("Ann")
	require.NoError(t, err)
	// 256 raw bytes for a 2048-bit key, hex-encoded.
	assert.Len(t, ciphertext, 512)
	assert.Equal(t, strings.ToLower(ciphertext), ciphertext)
}

func TestCipher_DecryptMalformed(t *testing.T) {
	cipher, err := EnsureKeyPair(filepath.Join(t.TempDir(), "keys"), testPassphrase)
	require.NoError(t, err)

	_, err = cipher.DecryptName("not hex!")
	assert.ErrorIs(t, err, ErrDecryption)

	_, err = cipher.DecryptName("deadbeef")
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCipher_DecryptWithDifferentKey(t *testing.T) {
	dir := t.TempDir()
	first, err := EnsureKeyPair(filepath.Join(dir, "one"), testPassphrase)
	require.NoError(t, err)
	second, err := EnsureKeyPair(filepath.Join(dir, "two"), testPassphrase)
	require.NoError(t, err)

	ciphertext, err := first.EncryptName("Ann")
	require.NoError(t, err)

	_, err = second.DecryptName(ciphertext)
	assert.ErrorIs(t, err, ErrDecryption)
}
