package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalker-loki/chainkey"
)

const (
	roleSend = "send"
	roleRecv = "recv"

	formatBinary = "binary"
	formatCBOR   = "cbor"
)

var (
	verbose bool
	log     = zap.NewNop()
)

// Execute runs the chainkey command tree on os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the chainkey command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "chainkey",
		Short:        "Inspect Olm-style symmetric chain ratchets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				log, err = zap.NewDevelopment()
			} else {
				log, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development logging")

	root.AddCommand(deriveCmd(), keygenCmd(), pickleCmd(), unpickleCmd())
	return root
}

func parseKey(s string) (chainkey.Key, error) {
	var k chainkey.Key
	b, err := hex.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("invalid hex key: %w", err)
	}
	defer memguard.WipeBytes(b)

	if len(b) != chainkey.KeySize {
		return k, fmt.Errorf("key has %d bytes: %w", len(b), chainkey.ErrInvalidLength)
	}
	copy(k[:], b)
	return k, nil
}

func checkRole(role string) error {
	if role != roleSend && role != roleRecv {
		return fmt.Errorf("unknown role %q, want %q or %q", role, roleSend, roleRecv)
	}
	return nil
}
