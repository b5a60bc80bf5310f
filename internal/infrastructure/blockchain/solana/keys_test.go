package sdk_test

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	sdk "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana"
)

func TestParsePublicKey_RoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			t.Fatalf("rand: %v", err)
		}
		if i == 0 {
			raw = make([]byte, 32) // all zero: leading-'1' encoding
		}

		pub, err := sdk.ParsePublicKey("address", base58.Encode(raw))
		if err != nil {
			t.Fatalf("parse %x: %v", raw, err)
		}
		if !bytes.Equal(pub.Bytes(), raw) {
			t.Fatalf("round trip: got %x, want %x", pub.Bytes(), raw)
		}
	}
}

func TestParsePublicKey_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"bad alphabet": "Il0O" + strings.Repeat("1", 28),
		"too short":    base58.Encode(make([]byte, 31)),
		"too long":     base58.Encode(append([]byte{1}, make([]byte, 32)...)),
		"whitespace":   " 11111111111111111111111111111111",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sdk.ParsePublicKey("mint address", input)
			if err == nil {
				t.Fatalf("expected error for %q", input)
			}
			if !errors.Is(err, sdk.ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), "Invalid mint address") {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		})
	}
}

func TestParseSecretKey_RejectsMismatchedHalves(t *testing.T) {
	client := sdk.NewClient(sdk.Config{})
	a, b := client.CreateAccount(), client.CreateAccount()

	ra, _ := base58.Decode(string(a.PrivateKey))
	rb, _ := base58.Decode(string(b.PrivateKey))
	forged := append(append([]byte{}, ra[:32]...), rb[32:]...)

	if _, err := sdk.ParseSecretKey(base58.Encode(forged)); !errors.Is(err, sdk.ErrDecode) {
		t.Fatalf("expected ErrDecode for mismatched keypair, got %v", err)
	}
}

func TestParseSecretKey_RejectsWrongLength(t *testing.T) {
	if _, err := sdk.ParseSecretKey(base58.Encode(make([]byte, 32))); !errors.Is(err, sdk.ErrDecode) {
		t.Fatalf("expected ErrDecode for 32-byte secret, got %v", err)
	}
}

func TestDecodeSignature(t *testing.T) {
	if _, err := sdk.DecodeSignature(base64.StdEncoding.EncodeToString(make([]byte, 64))); err != nil {
		t.Fatalf("64-byte signature rejected: %v", err)
	}
	for _, input := range []string{"", "not base64!", base64.StdEncoding.EncodeToString(make([]byte, 63))} {
		if _, err := sdk.DecodeSignature(input); !errors.Is(err, sdk.ErrDecode) {
			t.Fatalf("expected ErrDecode for %q, got %v", input, err)
		}
	}
}

func TestParseDecimals(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }

	for _, v := range []int64{0, 9, 255} {
		got, err := sdk.ParseDecimals(ptr(v))
		if err != nil {
			t.Fatalf("decimals %d rejected: %v", v, err)
		}
		if int64(got) != v {
			t.Fatalf("decimals: got %d, want %d", got, v)
		}
	}

	for _, v := range []*int64{nil, ptr(-1), ptr(256), ptr(1 << 40)} {
		_, err := sdk.ParseDecimals(v)
		if !errors.Is(err, sdk.ErrRange) {
			t.Fatalf("expected ErrRange, got %v", err)
		}
		if !strings.Contains(err.Error(), "decimals") {
			t.Fatalf("message should cite decimals: %q", err.Error())
		}
	}
}
