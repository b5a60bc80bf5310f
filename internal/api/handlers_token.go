package api

import (
	"net/http"

	entities "github.com/whiteelite/solgate/internal/domain/entities/solana"
	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/models"
)

type createTokenRequest struct {
	MintAuthority string `json:"mintAuthority"`
	Mint          string `json:"mint"`
	// Decimals is wider than the mint's u8 so out-of-range input can be
	// rejected instead of truncated.
	Decimals *int64 `json:"decimals"`
}

type mintTokenRequest struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
	Amount      uint64 `json:"amount"`
}

func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	var body createTokenRequest
	if !s.decodeJSON(w, r, &body) {
		return
	}

	ix, err := s.client.InitializeMint(models.InitializeMintRequest{
		MintAuthority: body.MintAuthority,
		Mint:          body.Mint,
		Decimals:      body.Decimals,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.instructionBuilt(r, entities.InstructionKindInitializeMint, ix)

	writeData(w, serializeInstruction(ix, accountMetas))
}

func (s *Server) handleMintToken(w http.ResponseWriter, r *http.Request) {
	var body mintTokenRequest
	if !s.decodeJSON(w, r, &body) {
		return
	}

	ix, err := s.client.MintTo(models.MintToRequest{
		Mint:        body.Mint,
		Destination: body.Destination,
		Authority:   body.Authority,
		Amount:      body.Amount,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.instructionBuilt(r, entities.InstructionKindMintTo, ix)

	writeData(w, serializeInstruction(ix, accountMetas))
}
