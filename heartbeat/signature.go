package heartbeat

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
)

var ErrInvalidSignature = errors.New("invalid heartbeat signature")

// recovered signers keyed by digest and signature
var signerCache, _ = lru.New(4096)

// Sign returns the 65 byte [R || S || V] signature over the EIP-191 digest of
// the heartbeat message hash, with V in {27, 28}.
func Sign(key *ecdsa.PrivateKey, serviceID, blueprintID uint64, statusCode uint8, metrics []byte) ([]byte, error) {
	hash := MessageHash(serviceID, blueprintID, statusCode, metrics)
	sig, err := crypto.Sign(accounts.TextHash(hash[:]), key)
	if err != nil {
		return nil, fmt.Errorf("error signing heartbeat: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// RecoverSigner returns the address that produced sig over the heartbeat.
// Only V in {27, 28} and low S values are accepted, so every heartbeat has a
// single valid signature.
func RecoverSigner(serviceID, blueprintID uint64, statusCode uint8, metrics, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(sig))
	}
	v := sig[crypto.RecoveryIDOffset]
	if v != 27 && v != 28 {
		return common.Address{}, fmt.Errorf("%w: bad recovery id %d", ErrInvalidSignature, v)
	}
	r, s := new(big.Int).SetBytes(sig[:32]), new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(v-27, r, s, true) {
		return common.Address{}, fmt.Errorf("%w: malleable signature values", ErrInvalidSignature)
	}

	hash := MessageHash(serviceID, blueprintID, statusCode, metrics)
	digest := accounts.TextHash(hash[:])

	key := string(digest) + string(sig)
	if cached, ok := signerCache.Get(key); ok {
		return cached.(common.Address), nil
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	normalized[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	addr := crypto.PubkeyToAddress(*pub)
	signerCache.Add(key, addr)
	return addr, nil
}

// Verify reports whether sig was produced by operator.
func Verify(operator common.Address, serviceID, blueprintID uint64, statusCode uint8, metrics, sig []byte) error {
	signer, err := RecoverSigner(serviceID, blueprintID, statusCode, metrics, sig)
	if err != nil {
		return err
	}
	if signer != operator {
		return fmt.Errorf("%w: signed by %s, not %s", ErrInvalidSignature, signer.Hex(), operator.Hex())
	}
	return nil
}
