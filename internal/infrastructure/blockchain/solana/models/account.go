package models

// Account is the wire form of a keypair. PrivateKey is the 64-byte
// seed || public key in base58.
type Account struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"secret_key"`
}

type SignedMessage struct {
	Signature string
	PublicKey string
	Message   string
}

type Verification struct {
	Valid     bool
	Message   string
	PublicKey string
}
