package workload

import (
	"crypto/ed25519"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	crypto "github.com/multiversx/mx-chain-crypto-go"
)

type accountKey struct {
	private   crypto.PrivateKey
	publicKey []byte
}

// keyring lazily derives and caches one ed25519 key per account id. The key seed is the hash of the id
// so every run produces the same keys for the same accounts.
type keyring struct {
	hasher      hashing.Hasher
	marshalizer marshal.Marshalizer
	keyGen      crypto.KeyGenerator
	signer      crypto.SingleSigner
	keys        map[string]*accountKey
}

func newKeyring(
	hasher hashing.Hasher,
	marshalizer marshal.Marshalizer,
	keyGen crypto.KeyGenerator,
	signer crypto.SingleSigner,
) *keyring {
	return &keyring{
		hasher:      hasher,
		marshalizer: marshalizer,
		keyGen:      keyGen,
		signer:      signer,
		keys:        make(map[string]*accountKey),
	}
}

func (kr *keyring) keyOf(accountID string) (*accountKey, error) {
	key, ok := kr.keys[accountID]
	if ok {
		return key, nil
	}

	seed := kr.hasher.Compute(accountID)
	if len(seed) < ed25519.SeedSize {
		return nil, fmt.Errorf("hasher output of %d bytes is too short for a key seed", len(seed))
	}

	expanded := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	private, err := kr.keyGen.PrivateKeyFromByteArray(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w while deriving the key of %s", err, accountID)
	}

	publicKey, err := private.GeneratePublic().ToByteArray()
	if err != nil {
		return nil, err
	}

	key = &accountKey{
		private:   private,
		publicKey: publicKey,
	}
	kr.keys[accountID] = key

	return key, nil
}

func (kr *keyring) publicKeyOf(accountID string) ([]byte, error) {
	key, err := kr.keyOf(accountID)
	if err != nil {
		return nil, err
	}

	return key.publicKey, nil
}

func (kr *keyring) signingDigest(tx *Transaction) ([]byte, error) {
	buff, err := kr.marshalizer.Marshal(tx.unsigned())
	if err != nil {
		return nil, err
	}

	return kr.hasher.Compute(string(buff)), nil
}

func (kr *keyring) sign(tx *Transaction) error {
	key, err := kr.keyOf(tx.SignerID)
	if err != nil {
		return err
	}

	tx.PublicKey = key.publicKey
	digest, err := kr.signingDigest(tx)
	if err != nil {
		return err
	}

	tx.Signature, err = kr.signer.Sign(key.private, digest)

	return err
}

func (kr *keyring) verify(tx *Transaction) error {
	if tx == nil {
		return ErrNilTransaction
	}

	publicKey, err := kr.keyGen.PublicKeyFromByteArray(tx.PublicKey)
	if err != nil {
		return err
	}

	digest, err := kr.signingDigest(tx)
	if err != nil {
		return err
	}

	return kr.signer.Verify(publicKey, digest, tx.Signature)
}
