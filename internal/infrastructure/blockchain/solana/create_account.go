package sdk

import (
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	entities "github.com/whiteelite/solgate/internal/domain/entities/solana"
	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/mappers"
	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/models"
)

// CreateAccount generates a fresh ed25519 keypair. PrivateKey is the full
// 64-byte keypair (seed || public key) in base58.
func (c *Client) CreateAccount() entities.Account {
	account := types.NewAccount()

	return mappers.FromAccount(models.Account{
		PrivateKey: base58.Encode(account.PrivateKey),
		PublicKey:  account.PublicKey.ToBase58(),
	})
}
