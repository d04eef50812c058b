package main

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/config"
	"github.com/effective-security/vendrmcp/encoding"
	yamlenc "github.com/effective-security/vendrmcp/encoding/yaml"
	"github.com/effective-security/vendrmcp/tools"
	"github.com/effective-security/vendrmcp/utils"
	"github.com/spf13/cobra"
)

type inputTyped interface {
	InputType() reflect.Type
}

func newToolsCmd(c *cli) *cobra.Command {
	var (
		format   string
		examples bool
	)
	cmd := &cobra.Command{
		Use:   "tools [name...]",
		Short: "List the tools with their parameters",
		Long: `List the tools with their descriptions, annotations and input schemas.
With --examples, prints an example input of each tool in YAML, with the field descriptions as comments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(c.configFile)
			if err != nil {
				// the listing does not call the backend
				cfg = &config.Config{}
				cfg.SetDefaults()
			}
			registry, err := newRegistry(cfg, nil)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				if registry, err = registry.Filter(args); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if examples {
				return printExamples(cmd, registry)
			}

			desc := tools.Describe(tools.AsITools(registry.List()...)...)
			switch format {
			case encoding.ModeJSON:
				fmt.Fprintln(out, utils.ToJSONIndent(desc))
			case encoding.ModeYAML, "":
				y, err := yamlenc.FromJSON([]byte(utils.ToJSON(desc)))
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(y))
			default:
				return errors.Newf("unsupported format: %q", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", encoding.ModeYAML, "Output format: yaml or json")
	cmd.Flags().BoolVar(&examples, "examples", false, "Print example inputs")
	return cmd
}

func printExamples(cmd *cobra.Command, registry *tools.Registry) error {
	out := cmd.OutOrStdout()
	enc := yamlenc.NewEncoder().WithCommentStyle(yamlenc.LineComment)
	for _, tool := range registry.List() {
		typed, ok := tool.(inputTyped)
		if !ok {
			continue
		}
		example, err := enc.Example(typed.InputType())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# %s\n%s---\n", tool.Name(), example)
	}
	return nil
}
