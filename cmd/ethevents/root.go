package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/events/service"
)

const (
	outputJSON = "json"
	outputText = "text"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ethevents",
		Short:        "Canonical encoding and hashing of Ethereum bridge events",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringP("output", "o", outputJSON, "Output format (json|text)")

	// the service needs no store for hashing and address normalization
	svc := service.NewService(nil, zap.NewNop())

	cmd.AddCommand(hashCmd(svc))
	cmd.AddCommand(decodeCmd())
	cmd.AddCommand(addressCmd(svc))
	return cmd
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case outputJSON, outputText:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
