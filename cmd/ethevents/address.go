package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainsafe/ethbridge-events/pkg/events/service"
)

func addressCmd(svc service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "address <addr>",
		Short: "Print the canonical and checksummed forms of an Ethereum address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			resp, err := svc.NormalizeAddress(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == outputJSON {
				return writeJSON(out, resp)
			}
			_, err = fmt.Fprintf(out, "canonical:   %s\nchecksummed: %s\n", resp.Canonical, resp.Checksummed)
			return err
		},
	}
}
