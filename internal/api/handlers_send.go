package api

import (
	"net/http"

	entities "github.com/whiteelite/solgate/internal/domain/entities/solana"
	sdk "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana"
	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/models"
)

type sendSOLRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports uint64 `json:"lamports"`
}

type sendSOLData struct {
	instructionData
	SOL string `json:"sol"`
}

// sendTokenRequest carries mint for validation only; see
// models.TransferTokenRequest.
type sendTokenRequest struct {
	Destination string `json:"destination"`
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	Amount      uint64 `json:"amount"`
}

func (s *Server) handleSendSOL(w http.ResponseWriter, r *http.Request) {
	var body sendSOLRequest
	if !s.decodeJSON(w, r, &body) {
		return
	}

	ix, err := s.client.TransferSOL(models.TransferSOLRequest{
		From:     body.From,
		To:       body.To,
		Lamports: body.Lamports,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.instructionBuilt(r, entities.InstructionKindTransferSOL, ix)

	writeData(w, sendSOLData{
		instructionData: serializeInstruction(ix, accountAddresses),
		SOL:             sdk.LamportsToSOL(body.Lamports).String(),
	})
}

func (s *Server) handleSendToken(w http.ResponseWriter, r *http.Request) {
	var body sendTokenRequest
	if !s.decodeJSON(w, r, &body) {
		return
	}

	ix, err := s.client.TransferToken(models.TransferTokenRequest{
		Destination: body.Destination,
		Mint:        body.Mint,
		Owner:       body.Owner,
		Amount:      body.Amount,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.instructionBuilt(r, entities.InstructionKindTransferToken, ix)

	writeData(w, serializeInstruction(ix, accountSigners))
}
