package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKey(0x42))
	require.NoError(t, err)

	for _, plaintext := range []string{"p@ss", "", "пароль с юникодом 🔑"} {
		blob, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		got, err := c.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCipher_EncryptIsNonDeterministic(t *testing.T) {
	c, err := NewCipher(testKey(0x42))
	require.NoError(t, err)

	a, err := c.Encrypt("same secret")
	require.NoError(t, err)
	b, err := c.Encrypt("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "fresh nonce per encryption")
}

func TestCipher_DecryptWrongKey(t *testing.T) {
	c1, err := NewCipher(testKey(0x01))
	require.NoError(t, err)
	c2, err := NewCipher(testKey(0x02))
	require.NoError(t, err)

	blob, err := c1.Encrypt("secret")
	require.NoError(t, err)

	_, err = c2.Decrypt(blob)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCipher_DecryptTampered(t *testing.T) {
	c, err := NewCipher(testKey(0x42))
	require.NoError(t, err)

	blob, err := c.Encrypt("secret")
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff

	_, err = c.Decrypt(blob)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCipher_DecryptTruncated(t *testing.T) {
	c, err := NewCipher(testKey(0x42))
	require.NoError(t, err)

	_, err = c.Decrypt([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestNewCipher_RejectsBadKeySize(t *testing.T) {
	_, err := NewCipher([]byte("too short"))
	assert.Error(t, err)
}
