package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/whiteelite/solgate/pkg/shared/domain/entities"
)

type (
	PrivateKey string
	PublicKey  string
)

// Account is a keypair rendered in its canonical base58 text form.
type Account struct {
	entities.Entity

	PublicKey  PublicKey
	PrivateKey PrivateKey
}

type InstructionKind string

const (
	InstructionKindTransferSOL    InstructionKind = "transfer_sol"
	InstructionKindTransferToken  InstructionKind = "transfer_token"
	InstructionKindInitializeMint InstructionKind = "initialize_mint"
	InstructionKindMintTo         InstructionKind = "mint_to"
)

type AccountMeta struct {
	PubKey     PublicKey `json:"pubkey"`
	IsSigner   bool      `json:"is_signer"`
	IsWritable bool      `json:"is_writable"`
}

// InstructionBuilt records a constructed (never submitted) instruction for
// the audit stream.
type InstructionBuilt struct {
	entities.Entity `json:"-"`

	ID              uuid.UUID       `json:"id"`
	Kind            InstructionKind `json:"kind"`
	ProgramID       PublicKey       `json:"program_id"`
	Accounts        []AccountMeta   `json:"accounts"`
	InstructionData string          `json:"instruction_data"`
	CreatedAt       time.Time       `json:"created_at"`
}

const InstructionBuiltEventType = "solgate.instruction_built"

func (InstructionBuilt) EventType() string { return InstructionBuiltEventType }
