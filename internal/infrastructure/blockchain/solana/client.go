package sdk

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	models "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/models"
)

// Client builds instructions and signs or verifies messages. It never talks
// to a cluster; every method is a pure function of its request.
type Client struct {
	allowSecretSigning bool
}

type Config struct {
	// AllowSecretSigning enables SignMessage, which takes a raw secret key
	// from the caller. Leave disabled for networked deployments.
	AllowSecretSigning bool
}

func NewClient(cfg Config) *Client {
	return &Client{allowSecretSigning: cfg.AllowSecretSigning}
}

// TransferSOL builds a System Program transfer of lamports from From to To.
func (c *Client) TransferSOL(req models.TransferSOLRequest) (types.Instruction, error) {
	from, err := ParsePublicKey("from address", req.From)
	if err != nil {
		return types.Instruction{}, err
	}
	to, err := ParsePublicKey("to address", req.To)
	if err != nil {
		return types.Instruction{}, err
	}

	return build("transfer", func() types.Instruction {
		return system.Transfer(system.TransferParam{
			From:   from,
			To:     to,
			Amount: req.Lamports,
		})
	})
}

// TransferToken builds an SPL Token transfer. Owner is used as both the
// source account and its authority; Mint must be a valid address but is not
// part of the instruction.
func (c *Client) TransferToken(req models.TransferTokenRequest) (types.Instruction, error) {
	destination, err := ParsePublicKey("destination address", req.Destination)
	if err != nil {
		return types.Instruction{}, err
	}
	if _, err := ParsePublicKey("mint address", req.Mint); err != nil {
		return types.Instruction{}, err
	}
	owner, err := ParsePublicKey("owner address", req.Owner)
	if err != nil {
		return types.Instruction{}, err
	}

	return build("transfer", func() types.Instruction {
		return token.Transfer(token.TransferParam{
			From:   owner,
			To:     destination,
			Auth:   owner,
			Amount: req.Amount,
		})
	})
}

// InitializeMint builds an SPL Token InitializeMint with no freeze authority.
func (c *Client) InitializeMint(req models.InitializeMintRequest) (types.Instruction, error) {
	decimals, err := ParseDecimals(req.Decimals)
	if err != nil {
		return types.Instruction{}, err
	}
	mint, err := ParsePublicKey("mint address", req.Mint)
	if err != nil {
		return types.Instruction{}, err
	}
	authority, err := ParsePublicKey("mint authority address", req.MintAuthority)
	if err != nil {
		return types.Instruction{}, err
	}

	return build("initialize mint", func() types.Instruction {
		return token.InitializeMint(token.InitializeMintParam{
			Decimals: decimals,
			Mint:     mint,
			MintAuth: authority,
		})
	})
}

// MintTo builds an SPL Token MintTo signed by a single authority.
func (c *Client) MintTo(req models.MintToRequest) (types.Instruction, error) {
	mint, err := ParsePublicKey("mint address", req.Mint)
	if err != nil {
		return types.Instruction{}, err
	}
	destination, err := ParsePublicKey("destination address", req.Destination)
	if err != nil {
		return types.Instruction{}, err
	}
	authority, err := ParsePublicKey("authority address", req.Authority)
	if err != nil {
		return types.Instruction{}, err
	}

	return build("mint to", func() types.Instruction {
		return token.MintTo(token.MintToParam{
			Mint:   mint,
			To:     destination,
			Auth:   authority,
			Amount: req.Amount,
		})
	})
}

// build runs an SDK constructor, turning a serialization panic into a
// BuildError.
func build(name string, fn func() types.Instruction) (ix types.Instruction, err error) {
	defer func() {
		if r := recover(); r != nil {
			ix = types.Instruction{}
			err = &BuildError{Instruction: name, Err: fmt.Errorf("%v", r)}
		}
	}()
	return fn(), nil
}
