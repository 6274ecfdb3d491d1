package commands

import (
	"encoding"
	"encoding/hex"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalker-loki/chainkey"
)

// persistable is implemented by both chain roles.
type persistable interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	MarshalCBOR() ([]byte, error)
	UnmarshalCBOR([]byte) error
}

func marshalChain(c persistable, format string) ([]byte, error) {
	switch format {
	case formatBinary:
		return c.MarshalBinary()
	case formatCBOR:
		return c.MarshalCBOR()
	}
	return nil, fmt.Errorf("unknown format %q, want %q or %q", format, formatBinary, formatCBOR)
}

func unmarshalChain(c persistable, format string, data []byte) error {
	switch format {
	case formatBinary:
		return c.UnmarshalBinary(data)
	case formatCBOR:
		return c.UnmarshalCBOR(data)
	}
	return fmt.Errorf("unknown format %q, want %q or %q", format, formatBinary, formatCBOR)
}

func pickleCmd() *cobra.Command {
	var (
		seed   string
		role   string
		format string
		index  uint32
	)
	cmd := &cobra.Command{
		Use:   "pickle",
		Short: "Print the persisted record of a chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRole(role); err != nil {
				return err
			}
			key, err := parseKey(seed)
			if err != nil {
				return fmt.Errorf("can't parse seed: %w", err)
			}
			defer key.Wipe()

			var c interface {
				persistable
				Wipe()
			}
			if role == roleRecv {
				c = chainkey.RestoreRemoteChainKey(key, index)
			} else {
				c = chainkey.RestoreChainKey(key, index)
			}
			defer c.Wipe()

			record, err := marshalChain(c, format)
			if err != nil {
				return err
			}
			defer memguard.WipeBytes(record)

			log.Debug("pickled chain", zap.String("format", format), zap.Int("size", len(record)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(record))
			return err
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "hex chain key")
	cmd.Flags().StringVar(&role, "role", roleSend, "chain role: send or recv")
	cmd.Flags().StringVar(&format, "format", formatBinary, "record format: binary or cbor")
	cmd.Flags().Uint32Var(&index, "index", 0, "chain index of the seed")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func unpickleCmd() *cobra.Command {
	var (
		record     string
		role       string
		format     string
		ratchetKey string
		count      int
	)
	cmd := &cobra.Command{
		Use:   "unpickle",
		Short: "Restore a chain from a persisted record and print its next message keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRole(role); err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("count must be non-negative")
			}
			data, err := hex.DecodeString(record)
			if err != nil {
				return fmt.Errorf("invalid hex record: %w", err)
			}
			defer memguard.WipeBytes(data)

			if role == roleRecv {
				ck := &chainkey.RemoteChainKey{}
				defer ck.Wipe()
				if err := unmarshalChain(ck, format, data); err != nil {
					return fmt.Errorf("can't restore chain: %w", err)
				}
				return printReceivingKeys(cmd.OutOrStdout(), ck, count)
			}

			rk, err := ratchetKeyFrom(ratchetKey)
			if err != nil {
				return err
			}
			ck := &chainkey.ChainKey{}
			defer ck.Wipe()
			if err := unmarshalChain(ck, format, data); err != nil {
				return fmt.Errorf("can't restore chain: %w", err)
			}
			return printSendingKeys(cmd.OutOrStdout(), ck, rk, count)
		},
	}

	cmd.Flags().StringVar(&record, "record", "", "hex persisted record")
	cmd.Flags().StringVar(&role, "role", roleSend, "chain role: send or recv")
	cmd.Flags().StringVar(&format, "format", formatBinary, "record format: binary or cbor")
	cmd.Flags().StringVar(&ratchetKey, "ratchet-key", "", "hex ratchet public key for the send role (default: freshly generated)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of message keys")
	_ = cmd.MarkFlagRequired("record")
	return cmd
}
