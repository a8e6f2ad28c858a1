package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []string{"3des", "blowfish", "idea", "sm4"}, Algorithms())
}

func TestLookupAlgorithm(t *testing.T) {
	alg, err := LookupAlgorithm(" 3DES ")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmTripleDES, alg.Name)
	assert.Equal(t, 8, alg.BlockSize)
	assert.Equal(t, 24, alg.KeySize)

	_, err = LookupAlgorithm("rot13")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestAlgorithmRoundTrip(t *testing.T) {
	plain := []byte("bla bla, pairing blob")

	for _, name := range Algorithms() {
		t.Run("cipher="+name, func(t *testing.T) {
			alg, err := LookupAlgorithm(name)
			require.NoError(t, err)

			key := randomBytes(t, alg.KeySize)
			iv := randomBytes(t, alg.BlockSize)

			ct, err := alg.Encrypt(plain, key, WithIV(iv))
			require.NoError(t, err)
			assert.Zero(t, len(ct)%alg.BlockSize)
			assert.Greater(t, len(ct), len(plain))

			pt, err := alg.Decrypt(ct, key, WithIV(iv))
			require.NoError(t, err)
			assert.Equal(t, plain, pt)

			_, err = alg.Encrypt(plain, key[:alg.KeySize-1])
			require.ErrorIs(t, err, ErrInvalidKeyLength)

			_, err = alg.Decrypt(ct[:len(ct)-1], key, WithIV(iv))
			require.ErrorIs(t, err, ErrInvalidBufferLength)
		})
	}
}

func TestAlgorithmTripleDESMatchesAdapter(t *testing.T) {
	alg, err := LookupAlgorithm(AlgorithmTripleDES)
	require.NoError(t, err)

	key := append(append(append([]byte{}, testKey1...), testKey2...), testKey3...)
	plain := []byte("same chain, same bytes")

	a, err := alg.Encrypt(plain, key)
	require.NoError(t, err)
	b, err := TripleDESCBCEncrypt(plain, testKey1, testKey2, testKey3)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}
