package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a canonical event encoding and print the event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			ev, err := ethbridge.DecodeEvent(raw)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == outputJSON {
				return writeJSON(out, struct {
					Hash  hash.Hash           `json:"hash"`
					Event ethbridge.EventJSON `json:"event"`
				}{hash.Sha256(raw), ethbridge.EventJSON{Event: ev}})
			}
			body, err := ethbridge.MarshalEventJSON(ev)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "kind:  %s\nhash:  %s\nevent: %s\n", ev.Kind(), hash.Sha256(raw), body)
			return err
		},
	}
}
