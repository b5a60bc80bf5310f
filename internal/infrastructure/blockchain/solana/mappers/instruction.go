package mappers

import (
	"encoding/base64"
	"time"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/google/uuid"
	entities "github.com/whiteelite/solgate/internal/domain/entities/solana"
)

// ToInstructionBuilt converts an SDK instruction into the audit entity.
func ToInstructionBuilt(kind entities.InstructionKind, ix types.Instruction) entities.InstructionBuilt {
	accounts := make([]entities.AccountMeta, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		accounts = append(accounts, entities.AccountMeta{
			PubKey:     entities.PublicKey(acc.PubKey.ToBase58()),
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}

	return entities.InstructionBuilt{
		ID:              uuid.New(),
		Kind:            kind,
		ProgramID:       entities.PublicKey(ix.ProgramID.ToBase58()),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(ix.Data),
		CreatedAt:       time.Now().UTC(),
	}
}
