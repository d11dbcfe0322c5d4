package cmd

import (
	"errors"
	"fmt"
	neturl "net/url"
	"os"

	"github.com/abdul-hamid-achik/reqtools/packages/config"
	reqhttp "github.com/abdul-hamid-achik/reqtools/packages/http"
	"github.com/abdul-hamid-achik/reqtools/packages/query"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"

	cfg         = &config.Config{}
	cfgFileFlag string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "reqtools",
	Short: "Inspect HTTP requests, responses and JSON from your terminal.",
	Long: `reqtools is a small toolbox for poking at HTTP APIs. It performs
requests with curl-style arguments, pretty prints saved requests and
responses, and pipes JSON values through jq filters.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFileFlag
		if path == "" {
			path = config.Find()
		}

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		if noColorFlag || cfg.GetNoColor() {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFileFlag, "config", "", "Path to a .reqtools.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(curlCmd)
	rootCmd.AddCommand(resCmd)
	rootCmd.AddCommand(reqCmd)
	rootCmd.AddCommand(jqCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps the failure kinds from the error design to fixed exit
// codes so scripts can tell them apart.
func exitCodeFor(err error) int {
	var toolErr *query.ToolNotFoundError
	if errors.As(err, &toolErr) {
		return ExitToolMissing
	}

	var queryErr *query.QueryError
	if errors.As(err, &queryErr) {
		return ExitQueryError
	}

	var malformedErr *reqhttp.MalformedMessageError
	if errors.As(err, &malformedErr) {
		return ExitMalformedMessage
	}

	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		return ExitNetworkError
	}

	return ExitError
}
