package api

import (
	"net/http"

	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/models"
)

type signMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

type signMessageData struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

type verifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

type verifyMessageData struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

func (s *Server) handleSignMessage(w http.ResponseWriter, r *http.Request) {
	var body signMessageRequest
	if !s.decodeJSON(w, r, &body) {
		return
	}

	signed, err := s.client.SignMessage(models.SignMessageRequest{
		Message: body.Message,
		Secret:  body.Secret,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeData(w, signMessageData{
		Signature: signed.Signature,
		PublicKey: signed.PublicKey,
		Message:   signed.Message,
	})
}

func (s *Server) handleVerifyMessage(w http.ResponseWriter, r *http.Request) {
	var body verifyMessageRequest
	if !s.decodeJSON(w, r, &body) {
		return
	}

	res, err := s.client.VerifyMessage(models.VerifyMessageRequest{
		Message:   body.Message,
		Signature: body.Signature,
		PublicKey: body.Pubkey,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeData(w, verifyMessageData{
		Valid:   res.Valid,
		Message: res.Message,
		Pubkey:  res.PublicKey,
	})
}
