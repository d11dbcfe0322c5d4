package cmd

import (
	"github.com/abdul-hamid-achik/reqtools/packages/display"
	reqhttp "github.com/abdul-hamid-achik/reqtools/packages/http"
	"github.com/spf13/cobra"
)

var reqCmd = &cobra.Command{
	Use:   "req [file]",
	Short: "Pretty print a saved raw HTTP request",
	Long: `Pretty print a raw HTTP request read from a file or stdin. A relative
request target is joined with the Host header to form the full URL.

Examples:
  reqtools req request.http
  cat request.http | reqtools req`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		request, err := reqhttp.ParseRawRequest(data)
		if err != nil {
			return err
		}

		formatter := display.NewFormatter(display.WithWriter(cmd.OutOrStdout()), display.WithMaxBodyLength(cfg.MaxBodyLength))
		formatter.PrintRequest(request)
		return nil
	},
}
