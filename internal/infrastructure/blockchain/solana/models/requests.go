package models

type SignMessageRequest struct {
	Message string
	Secret  string
}

type VerifyMessageRequest struct {
	Message   string
	Signature string
	PublicKey string
}

type TransferSOLRequest struct {
	From     string
	To       string
	Lamports uint64
}

// TransferTokenRequest mirrors the observed token transfer contract: Owner
// acts as both the source token account and its authority, and Mint is
// validated but does not take part in the instruction.
type TransferTokenRequest struct {
	Destination string
	Mint        string
	Owner       string
	Amount      uint64
}

type InitializeMintRequest struct {
	MintAuthority string
	Mint          string
	Decimals      *int64
}

type MintToRequest struct {
	Mint        string
	Destination string
	Authority   string
	Amount      uint64
}
