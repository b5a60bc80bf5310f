// Package cli wires configuration, logging and the HTTP server into the
// solgate command line.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile string
}

// NewRootCommand creates the root command for the solgate CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "solgate",
		Short: "solgate - Solana instruction builder",
		Long: `Builds unsigned Solana instructions, keypairs and message signatures
over a small JSON HTTP API. Nothing is ever submitted to a cluster.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewKeypairCommand(opts))

	return cmd
}
