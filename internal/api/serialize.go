package api

import (
	"encoding/base64"

	"github.com/blocto/solana-go-sdk/types"
)

// accountShape selects how instruction accounts are rendered.
type accountShape int

const (
	// accountAddresses renders a plain list of base58 addresses.
	accountAddresses accountShape = iota
	// accountSigners renders {pubkey, isSigner}.
	accountSigners
	// accountMetas renders {pubkey, is_signer, is_writable}.
	accountMetas
)

type signerAccount struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

type metaAccount struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type instructionData struct {
	ProgramID       string `json:"program_id"`
	Accounts        any    `json:"accounts"`
	InstructionData string `json:"instruction_data"`
}

func serializeInstruction(ix types.Instruction, shape accountShape) instructionData {
	var accounts any
	switch shape {
	case accountAddresses:
		out := make([]string, 0, len(ix.Accounts))
		for _, acc := range ix.Accounts {
			out = append(out, acc.PubKey.ToBase58())
		}
		accounts = out
	case accountSigners:
		out := make([]signerAccount, 0, len(ix.Accounts))
		for _, acc := range ix.Accounts {
			out = append(out, signerAccount{Pubkey: acc.PubKey.ToBase58(), IsSigner: acc.IsSigner})
		}
		accounts = out
	default:
		out := make([]metaAccount, 0, len(ix.Accounts))
		for _, acc := range ix.Accounts {
			out = append(out, metaAccount{
				Pubkey:     acc.PubKey.ToBase58(),
				IsSigner:   acc.IsSigner,
				IsWritable: acc.IsWritable,
			})
		}
		accounts = out
	}

	return instructionData{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(ix.Data),
	}
}
