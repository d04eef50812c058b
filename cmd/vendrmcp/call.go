package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/encoding"
	"github.com/effective-security/vendrmcp/utils"
	"github.com/spf13/cobra"
)

// ErrToolFailed is returned when the tool response is an error envelope
var ErrToolFailed = errors.New("tool call failed")

func newCallCmd(c *cli) *cobra.Command {
	var (
		inputFile string
		format    string
		pretty    bool
	)
	cmd := &cobra.Command{
		Use:   "call <tool> [input]",
		Short: "Call a tool and print the response",
		Long: `Call a tool with the input given as argument, read from a file with --input,
or from stdin with --input=-. The input is JSON by default, the format is
detected from the file extension or set with --format.`,
		Example: `  vendrmcp call getScope '{"scopeId":"..."}'
  vendrmcp call getCustomPriceEstimate --input scope.yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			registry, err := c.registry(cfg)
			if err != nil {
				return err
			}
			tool, ok := registry.Get(args[0])
			if !ok {
				return errors.Newf("unknown tool: %s", args[0])
			}

			var input []byte
			mode := format
			switch {
			case len(args) > 1:
				input = []byte(args[1])
			case inputFile == "-":
				input, err = io.ReadAll(cmd.InOrStdin())
			case inputFile != "":
				input, err = os.ReadFile(inputFile)
				if mode == "" {
					mode = encoding.ModeFromPath(inputFile)
				}
			}
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}

			codec, err := encoding.New(mode)
			if err != nil {
				return err
			}

			resp := tool.Execute(cmd.Context(), codec, input)
			text := resp.Text()
			if pretty {
				if indented := utils.JSONIndent(text); indented != "" {
					text = indented
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if resp.IsError {
				return ErrToolFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file, - for stdin")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: json, yaml or toml")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the response")
	return cmd
}
