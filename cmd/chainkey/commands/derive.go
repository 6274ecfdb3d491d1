package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stalker-loki/chainkey"
)

func deriveCmd() *cobra.Command {
	var (
		seed       string
		role       string
		ratchetKey string
		index      uint32
		count      int
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the message keys of a chain starting at an index",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRole(role); err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("count must be non-negative")
			}
			key, err := parseKey(seed)
			if err != nil {
				return fmt.Errorf("can't parse seed: %w", err)
			}
			defer key.Wipe()

			if role == roleRecv {
				ck := chainkey.RestoreRemoteChainKey(key, index)
				defer ck.Wipe()
				return printReceivingKeys(cmd.OutOrStdout(), ck, count)
			}

			rk, err := ratchetKeyFrom(ratchetKey)
			if err != nil {
				return err
			}
			ck := chainkey.RestoreChainKey(key, index)
			defer ck.Wipe()
			return printSendingKeys(cmd.OutOrStdout(), ck, rk, count)
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "hex chain key")
	cmd.Flags().StringVar(&role, "role", roleSend, "chain role: send or recv")
	cmd.Flags().StringVar(&ratchetKey, "ratchet-key", "", "hex ratchet public key for the send role (default: freshly generated)")
	cmd.Flags().Uint32Var(&index, "index", 0, "chain index of the seed")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of message keys")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func ratchetKeyFrom(s string) (chainkey.RatchetPublicKey, error) {
	if s == "" {
		pair, err := chainkey.GenerateRatchetKeyPair(rand.Reader)
		if err != nil {
			return chainkey.RatchetPublicKey{}, err
		}
		defer pair.Wipe()
		log.Info("generated ratchet key", zap.Stringer("ratchet_key", pair.PublicKey()))
		return pair.PublicKey(), nil
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return chainkey.RatchetPublicKey{}, fmt.Errorf("invalid hex ratchet key: %w", err)
	}
	return chainkey.ParseRatchetPublicKey(b)
}

func printSendingKeys(w io.Writer, ck *chainkey.ChainKey, rk chainkey.RatchetPublicKey, count int) error {
	start := ck.Index()
	for i := 0; i < count; i++ {
		mk := ck.CreateMessageKey(rk)
		k := mk.Key()
		_, err := fmt.Fprintf(w, "%d %s %s\n", mk.Index(), hex.EncodeToString(k[:]), mk.RatchetKey())
		k.Wipe()
		mk.Wipe()
		if err != nil {
			return err
		}
	}
	log.Info("derived message keys",
		zap.String("role", roleSend),
		zap.Uint64("from", start),
		zap.Uint64("next", ck.Index()))
	return nil
}

func printReceivingKeys(w io.Writer, ck *chainkey.RemoteChainKey, count int) error {
	start := ck.Index()
	for i := 0; i < count; i++ {
		mk := ck.CreateMessageKey()
		k := mk.Key()
		_, err := fmt.Fprintf(w, "%d %s\n", mk.Index(), hex.EncodeToString(k[:]))
		k.Wipe()
		mk.Wipe()
		if err != nil {
			return err
		}
	}
	log.Info("derived message keys",
		zap.String("role", roleRecv),
		zap.Uint64("from", start),
		zap.Uint64("next", ck.Index()))
	return nil
}
