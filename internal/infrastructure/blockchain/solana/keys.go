package sdk

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"math"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

const (
	PublicKeySize = ed25519.PublicKeySize
	SecretKeySize = ed25519.PrivateKeySize
	SignatureSize = ed25519.SignatureSize
)

var errEmpty = errors.New("must not be empty")

// ParsePublicKey decodes a base58 address that must be exactly 32 bytes.
// field names the request field in the returned error.
func ParsePublicKey(field, s string) (common.PublicKey, error) {
	raw, err := decodeBase58(field, s)
	if err != nil {
		return common.PublicKey{}, err
	}
	if len(raw) != PublicKeySize {
		return common.PublicKey{}, decodeError(field, fmt.Errorf("expected %d bytes, got %d", PublicKeySize, len(raw)))
	}
	return common.PublicKeyFromBytes(raw), nil
}

// ParseSecretKey decodes a base58 keypair (seed followed by public key).
// The public half must match the key derived from the seed.
func ParseSecretKey(s string) (types.Account, error) {
	const field = "secret key"

	raw, err := decodeBase58(field, s)
	if err != nil {
		return types.Account{}, err
	}
	if len(raw) != SecretKeySize {
		return types.Account{}, decodeError(field, fmt.Errorf("expected %d bytes, got %d", SecretKeySize, len(raw)))
	}

	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return types.Account{}, decodeError(field, errors.New("public key does not match seed"))
	}

	account, err := types.AccountFromBytes(raw)
	if err != nil {
		return types.Account{}, decodeError(field, err)
	}
	return account, nil
}

// DecodeSignature decodes a standard base64 signature of exactly 64 bytes.
func DecodeSignature(s string) ([]byte, error) {
	const field = "signature"

	if s == "" {
		return nil, decodeError(field, errEmpty)
	}
	sig, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, decodeError(field, err)
	}
	if len(sig) != SignatureSize {
		return nil, decodeError(field, fmt.Errorf("expected %d bytes, got %d", SignatureSize, len(sig)))
	}
	return sig, nil
}

// ParseDecimals narrows a caller-supplied decimals value to the mint's u8.
func ParseDecimals(v *int64) (uint8, error) {
	if v == nil {
		return 0, &FieldError{Field: "decimals", Kind: ErrRange, Err: errors.New("decimals is required")}
	}
	if *v < 0 || *v > math.MaxUint8 {
		return 0, &FieldError{
			Field: "decimals",
			Kind:  ErrRange,
			Err:   fmt.Errorf("must be between 0 and %d, got %d", math.MaxUint8, *v),
		}
	}
	return uint8(*v), nil
}

func decodeBase58(field, s string) ([]byte, error) {
	if s == "" {
		return nil, decodeError(field, errEmpty)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, decodeError(field, err)
	}
	return raw, nil
}
