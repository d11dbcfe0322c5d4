package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/reqtools/packages/curl"
	"github.com/abdul-hamid-achik/reqtools/packages/display"
	reqhttp "github.com/abdul-hamid-achik/reqtools/packages/http"
	"github.com/abdul-hamid-achik/reqtools/packages/schema"
	"github.com/abdul-hamid-achik/reqtools/packages/stats"
	"github.com/spf13/cobra"
)

var curlCmd = &cobra.Command{
	Use:   "curl <url> [curl options]",
	Short: "Perform an HTTP request and pretty print the response",
	Long: `Perform an HTTP request described with curl-style arguments and render
the response as a formatted block.

Supported curl options: -X, -H, -d/--data, -u/--user, -A/--user-agent,
-e/--referer, -b/--cookie, -k/--insecure, -L/--location, -m/--max-time,
-s/--silent (no-op), -v (also print the request block).

reqtools extensions:
  --repeat N       repeat the request N times and print a latency summary
  --schema FILE    validate the JSON response body against a JSON Schema
  --no-color       disable colored output

Examples:
  reqtools curl http://localhost:8000/get
  reqtools curl -X POST -H "Content-Type: application/json" -d '{"a":1}' http://localhost:8000/post
  reqtools curl -v -L https://example.com
  reqtools curl --repeat 20 http://localhost:8000/`,
	// Arguments use curl's own syntax, so cobra must not eat the dashes.
	DisableFlagParsing: true,
	RunE:               curlCommand,
}

func curlCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return cmd.Help()
		}
	}

	parsed, err := curl.Parse(args)
	if err != nil {
		return err
	}

	// -L always follows; otherwise the config decides, keeping curl's
	// no-follow default when the key is absent.
	follow := parsed.FollowRedirects
	if !follow && cfg.FollowRedirects != nil {
		follow = *cfg.FollowRedirects
	}

	opts := []reqhttp.ClientOption{
		reqhttp.WithFollowRedirects(follow),
	}
	if cfg.MaxRedirects > 0 {
		opts = append(opts, reqhttp.WithMaxRedirects(cfg.MaxRedirects))
	}
	if parsed.Insecure || !cfg.GetValidateSSL() {
		opts = append(opts, reqhttp.WithValidateSSL(false))
	}
	if parsed.Timeout > 0 {
		opts = append(opts, reqhttp.WithTimeout(parsed.Timeout))
	} else if cfg.GetTimeout() > 0 {
		opts = append(opts, reqhttp.WithTimeout(cfg.GetTimeout()))
	}
	if cfg.Proxy != "" {
		opts = append(opts, reqhttp.WithProxy(cfg.Proxy))
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, reqhttp.WithDefaultHeaders(cfg.Headers))
	}

	client := reqhttp.NewClient(opts...)
	request := parsed.Request()

	formatter := display.NewFormatter(
		display.WithWriter(cmd.OutOrStdout()),
		display.WithNoColor(parsed.NoColor),
		display.WithMaxBodyLength(cfg.MaxBodyLength),
	)

	if parsed.IncludeRequest {
		formatter.PrintRequest(request)
	}

	var response *reqhttp.Response
	if parsed.Repeat > 1 {
		recorder := stats.NewRecorder()
		var lastErr error
		for i := 0; i < parsed.Repeat; i++ {
			resp, err := client.Do(cmd.Context(), request)
			if err != nil {
				recorder.Record(0, false)
				lastErr = err
				continue
			}
			recorder.Record(resp.Duration, true)
			response = resp
		}
		if response == nil {
			return fmt.Errorf("all %d requests failed: %w", parsed.Repeat, lastErr)
		}
		formatter.PrintResponse(response)
		recorder.Summarize().Print(cmd.OutOrStdout())
	} else {
		response, err = client.Do(cmd.Context(), request)
		if err != nil {
			return err
		}
		formatter.PrintResponse(response)
	}

	if parsed.SchemaPath != "" && response != nil {
		if err := schema.Validate(response.Body, parsed.SchemaPath); err != nil {
			return err
		}
	}

	return nil
}
