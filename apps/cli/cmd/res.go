package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/reqtools/packages/display"
	reqhttp "github.com/abdul-hamid-achik/reqtools/packages/http"
	"github.com/abdul-hamid-achik/reqtools/packages/schema"
	"github.com/spf13/cobra"
)

var (
	resURLFlag    string
	resSchemaFlag string
)

var resCmd = &cobra.Command{
	Use:   "res [file]",
	Short: "Pretty print a saved raw HTTP response",
	Long: `Pretty print a raw HTTP response read from a file or stdin, for example
the output of curl -i or a proxy dump. Header order and duplicate headers
are preserved exactly as saved.

Examples:
  curl -si https://example.com | reqtools res
  reqtools res response.http
  reqtools res response.http --url https://example.com --schema user.schema.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		response, err := reqhttp.ParseRawResponse(data)
		if err != nil {
			return err
		}
		if resURLFlag != "" {
			response.URL = resURLFlag
		}

		formatter := display.NewFormatter(display.WithWriter(cmd.OutOrStdout()), display.WithMaxBodyLength(cfg.MaxBodyLength))
		formatter.PrintResponse(response)

		if resSchemaFlag != "" {
			return schema.Validate(response.Body, resSchemaFlag)
		}
		return nil
	},
}

func init() {
	resCmd.Flags().StringVar(&resURLFlag, "url", "", "Effective URL to show (raw responses carry none)")
	resCmd.Flags().StringVar(&resSchemaFlag, "schema", "", "Validate the body against a JSON Schema file")
}

// readInput reads the single file argument, or stdin when the argument is
// missing or "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}
