package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/reqtools/packages/mock"
	"github.com/spf13/cobra"
)

var (
	mockPortFlag    int
	mockDelayFlag   string
	mockVerboseFlag bool
	mockRoutesFlag  string
	mockWatchFlag   bool
	mockRateFlag    float64
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Start a local mock server for trying the other commands",
	Long: `Start an HTTP mock server with httpbin-style routes:

  GET  /                    hello payload
  GET  /get, POST /post     echo method, url, args and headers
  GET  /headers             echo request headers
  GET  /status/{{code}}     respond with the given status code
  GET  /delay/{{duration}}  respond after a delay (e.g. /delay/500ms)
  GET  /uuid                a fresh UUID
  GET  /json                a sample JSON document

Additional static routes can be loaded from a YAML file and reloaded on
change with --watch.

Examples:
  reqtools mock
  reqtools mock --port 3000 --delay 100ms
  reqtools mock --routes routes.yaml --watch --verbose
  reqtools mock --rate 10`,
	Args: cobra.NoArgs,
	RunE: mockCommand,
}

func init() {
	mockCmd.Flags().IntVarP(&mockPortFlag, "port", "p", 0, "Port to run the mock server on (default 8000)")
	mockCmd.Flags().StringVarP(&mockDelayFlag, "delay", "d", "0", "Delay to add to all responses (e.g. 100ms, 1s)")
	mockCmd.Flags().BoolVarP(&mockVerboseFlag, "verbose", "v", false, "Enable verbose logging")
	mockCmd.Flags().StringVar(&mockRoutesFlag, "routes", "", "YAML file with additional static routes")
	mockCmd.Flags().BoolVar(&mockWatchFlag, "watch", false, "Reload the routes file when it changes")
	mockCmd.Flags().Float64Var(&mockRateFlag, "rate", 0, "Limit requests per second (0 = unlimited)")
}

func mockCommand(cmd *cobra.Command, args []string) error {
	var delay time.Duration
	if mockDelayFlag != "0" {
		var err error
		delay, err = time.ParseDuration(mockDelayFlag)
		if err != nil {
			return fmt.Errorf("invalid delay value %q: %w", mockDelayFlag, err)
		}
	}

	port := mockPortFlag
	if port == 0 {
		port = cfg.MockPort
	}
	if port == 0 {
		port = 8000
	}

	if mockWatchFlag && mockRoutesFlag == "" {
		return fmt.Errorf("--watch requires --routes")
	}

	server, err := mock.NewServer(
		mock.WithPort(port),
		mock.WithDelay(delay),
		mock.WithVerbose(mockVerboseFlag),
		mock.WithRoutesFile(mockRoutesFlag),
		mock.WithWatch(mockWatchFlag),
		mock.WithRateLimit(mockRateFlag),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d routes\n", len(server.Routes()))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down mock server...")
		cancel()
	}()

	return server.StartWithContext(ctx)
}
