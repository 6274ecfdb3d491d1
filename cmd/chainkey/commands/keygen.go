package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stalker-loki/chainkey"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a fresh Curve25519 ratchet public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := chainkey.GenerateRatchetKeyPair(rand.Reader)
			if err != nil {
				return err
			}
			defer pair.Wipe()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pair.PublicKey())
			return err
		},
	}
}
