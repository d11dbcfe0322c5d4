package cmd

// Exit codes for the reqtools CLI
const (
	// ExitSuccess indicates the command completed normally
	ExitSuccess = 0

	// ExitError indicates a generic failure
	ExitError = 1

	// ExitMalformedMessage indicates a saved HTTP message could not be parsed
	ExitMalformedMessage = 2

	// ExitQueryError indicates the query evaluator rejected the expression
	ExitQueryError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitToolMissing indicates the external query evaluator is not installed
	ExitToolMissing = 5

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
