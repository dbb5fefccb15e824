package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/events/service"
)

func hashCmd(svc service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the canonical encoding and hash of an event read from a JSON or YAML file",
		Long: "Reads one event in its tagged form, e.g.\n\n" +
			"  kind: new_contract\n  name: bridge\n  address: \"0x6b175474e89094c44da98b954eedeac495271d0f\"\n\n" +
			"Files ending in .yaml or .yml are read as YAML, anything else as JSON. Use - for stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if isYAML(args[0]) {
				if data, err = yamlToJSON(data); err != nil {
					return err
				}
			}
			ev, err := ethbridge.UnmarshalEventJSON(data)
			if err != nil {
				return err
			}
			resp, err := svc.HashEvent(cmd.Context(), ev)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == outputJSON {
				return writeJSON(out, resp)
			}
			_, err = fmt.Fprintf(out, "kind:     %s\nhash:     %s\nencoding: %s\n", resp.Kind, resp.Hash, resp.Encoding)
			return err
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event file: %w", err)
	}
	return data, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON converts a YAML document to JSON, keeping every scalar as the
// string it was written as so numbers wider than 64 bits survive.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse yaml: empty document")
	}
	v, err := yamlValue(doc.Content[0], map[*yaml.Node]bool{})
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// yamlValue converts n. active holds the anchors being expanded on the
// current path; meeting one again is a cycle.
func yamlValue(n *yaml.Node, active map[*yaml.Node]bool) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("yaml line %d: unknown alias %q", n.Line, n.Value)
		}
		if active[n.Alias] {
			return nil, fmt.Errorf("yaml line %d: alias %q refers to itself", n.Line, n.Value)
		}
		active[n.Alias] = true
		defer delete(active, n.Alias)
		return yamlValue(n.Alias, active)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c, active)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("yaml line %d: mapping keys must be scalars", key.Line)
			}
			v, err := yamlValue(n.Content[i+1], active)
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yaml line %d: unsupported node", n.Line)
	}
}
