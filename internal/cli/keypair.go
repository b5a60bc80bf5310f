package cli

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	sdk "github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana"
	"github.com/whiteelite/solgate/internal/infrastructure/blockchain/solana/mappers"
)

// NewKeypairCommand creates the keypair command. Its output matches the data
// of POST /keypair.
func NewKeypairCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keypair",
		Short: "Print a fresh keypair as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc := sdk.NewClient(sdk.Config{}).CreateAccount()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(mappers.ToAccount(acc))
		},
	}
}
