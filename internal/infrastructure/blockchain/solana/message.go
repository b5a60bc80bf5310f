package sdk

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/models"
)

// SignMessage signs req.Message with a caller-supplied keypair. It is only
// available when the client was built with AllowSecretSigning.
func (c *Client) SignMessage(req models.SignMessageRequest) (models.SignedMessage, error) {
	if !c.allowSecretSigning {
		return models.SignedMessage{}, ErrSigningDisabled
	}

	account, err := ParseSecretKey(req.Secret)
	if err != nil {
		return models.SignedMessage{}, err
	}

	sig := account.Sign([]byte(req.Message))
	return models.SignedMessage{
		Signature: base64.StdEncoding.EncodeToString(sig),
		PublicKey: account.PublicKey.ToBase58(),
		Message:   req.Message,
	}, nil
}

// VerifyMessage checks a signature against a message and public key. A
// mismatch is reported as Valid=false; only malformed input is an error.
func (c *Client) VerifyMessage(req models.VerifyMessageRequest) (models.Verification, error) {
	sig, err := DecodeSignature(req.Signature)
	if err != nil {
		return models.Verification{}, err
	}
	pub, err := ParsePublicKey("public key", req.PublicKey)
	if err != nil {
		return models.Verification{}, err
	}

	return models.Verification{
		Valid:     ed25519.Verify(ed25519.PublicKey(pub.Bytes()), []byte(req.Message), sig),
		Message:   req.Message,
		PublicKey: req.PublicKey,
	}, nil
}
