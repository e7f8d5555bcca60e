package heartbeat

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

var testAddr = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")

func TestSignRecover(t *testing.T) {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	require.Equal(t, testAddr, crypto.PubkeyToAddress(key.PublicKey))

	metrics := []byte{0x01, 0x02, 0x03}
	sig, err := Sign(key, 1, 2, 0, metrics)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	signer, err := RecoverSigner(1, 2, 0, metrics, sig)
	require.NoError(t, err)
	assert.Equal(t, testAddr, signer)

	// cached lookups return the same signer
	signer, err = RecoverSigner(1, 2, 0, metrics, sig)
	require.NoError(t, err)
	assert.Equal(t, testAddr, signer)

	require.NoError(t, Verify(testAddr, 1, 2, 0, metrics, sig))
	assert.ErrorIs(t, Verify(common.Address{0x01}, 1, 2, 0, metrics, sig), ErrInvalidSignature)

	signer, err = RecoverSigner(1, 2, 1, metrics, sig)
	if err == nil {
		assert.NotEqual(t, testAddr, signer, "a different message must not recover the signer")
	}
}

func TestRecoverSignerMalformed(t *testing.T) {
	_, err := RecoverSigner(1, 2, 0, nil, make([]byte, 64))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	sig, err := Sign(key, 1, 2, 0, nil)
	require.NoError(t, err)
	for _, v := range []byte{0, 1, 31} {
		bad := append([]byte{}, sig...)
		bad[64] = v
		_, err = RecoverSigner(1, 2, 0, nil, bad)
		assert.ErrorIs(t, err, ErrInvalidSignature, "v=%d", v)
	}
}

func TestRecoverSignerRejectsHighS(t *testing.T) {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	sig, err := Sign(key, 1, 2, 0, nil)
	require.NoError(t, err)

	// (r, n-s) with the flipped recovery id recovers the same key
	n := crypto.S256().Params().N
	s := new(big.Int).SetBytes(sig[32:64])
	flipped := append([]byte{}, sig...)
	new(big.Int).Sub(n, s).FillBytes(flipped[32:64])
	flipped[64] = 55 - flipped[64]

	_, err = RecoverSigner(1, 2, 0, nil, flipped)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	signer, err := RecoverSigner(1, 2, 0, nil, sig)
	require.NoError(t, err)
	assert.Equal(t, testAddr, signer)
}
