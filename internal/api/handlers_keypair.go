package api

import (
	"net/http"

	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/mappers"
)

func (s *Server) handleKeypair(w http.ResponseWriter, _ *http.Request) {
	writeData(w, mappers.ToAccount(s.client.CreateAccount()))
}
