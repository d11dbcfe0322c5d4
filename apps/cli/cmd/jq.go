package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/abdul-hamid-achik/reqtools/packages/query"
	"github.com/spf13/cobra"
)

var (
	jqQuietFlag   bool
	jqBuiltinFlag bool
	jqBinaryFlag  string
)

var jqCmd = &cobra.Command{
	Use:   "jq <file|-> <expression>",
	Short: "Pipe a JSON value through a query expression",
	Long: `Read a JSON value from a file or stdin and filter it through a query
expression. The expression is evaluated by the external jq binary; pass
--builtin to use the in-process engine (simple .a.b[0] paths only).

Examples:
  reqtools jq data.json '.users[0].name'
  curl -s http://localhost:8000/ | reqtools jq - '.data.value'
  reqtools jq -q data.json '.items | length'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[:1])
		if err != nil {
			return err
		}

		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("input is not valid JSON: %w", err)
		}

		binary := jqBinaryFlag
		if binary == "" {
			binary = cfg.JQBinary
		}

		runner := query.NewRunner(
			query.WithWriter(cmd.OutOrStdout()),
			query.WithQuiet(jqQuietFlag),
			query.WithBinary(binary),
		)

		if jqBuiltinFlag {
			_, err = runner.RunBuiltin(value, args[1])
			return err
		}

		_, err = runner.Run(cmd.Context(), value, args[1])
		return err
	},
}

func init() {
	jqCmd.Flags().BoolVarP(&jqQuietFlag, "quiet", "q", false, "Do not print the result")
	jqCmd.Flags().BoolVar(&jqBuiltinFlag, "builtin", false, "Use the built-in engine instead of the jq binary")
	jqCmd.Flags().StringVar(&jqBinaryFlag, "binary", "", "Path to the jq binary (default \"jq\")")
}
