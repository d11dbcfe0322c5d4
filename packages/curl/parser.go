package curl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/reqtools/packages/http"
)

// Command is a parsed curl invocation plus the reqtools extensions.
type Command struct {
	Method          string
	URL             string
	Headers         http.Headers
	Body            string
	BasicAuth       string
	Insecure        bool
	FollowRedirects bool
	Timeout         time.Duration

	// reqtools extensions
	IncludeRequest bool
	Repeat         int
	SchemaPath     string
	NoColor        bool
}

// Parse parses an argument list in curl syntax. The shell has already
// tokenized the arguments, so quoting is not a concern here.
func Parse(args []string) (*Command, error) {
	cmd := &Command{
		Method: "GET",
		Repeat: 1,
	}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-X" || arg == "--request":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.Method = strings.ToUpper(value)
			i = n

		case arg == "-H" || arg == "--header":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			parts := strings.SplitN(value, ":", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid header %q (expected 'Name: Value')", value)
			}
			cmd.Headers.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
			i = n

		case arg == "-d" || arg == "--data" || arg == "--data-raw" || arg == "--data-binary":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.Body = value
			// curl switches to POST when data is given
			if cmd.Method == "GET" {
				cmd.Method = "POST"
			}
			i = n

		case arg == "-u" || arg == "--user":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.BasicAuth = value
			i = n

		case arg == "-A" || arg == "--user-agent":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.Headers.Set("User-Agent", value)
			i = n

		case arg == "-e" || arg == "--referer":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.Headers.Set("Referer", value)
			i = n

		case arg == "-b" || arg == "--cookie":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.Headers.Set("Cookie", value)
			i = n

		case arg == "-m" || arg == "--max-time":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			seconds, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --max-time value %q", value)
			}
			cmd.Timeout = time.Duration(seconds * float64(time.Second))
			i = n

		case arg == "-s" || arg == "--silent":
			// Output is already quiet; accepted so pasted curl
			// command lines keep working.
			i++

		case arg == "-k" || arg == "--insecure":
			cmd.Insecure = true
			i++

		case arg == "-L" || arg == "--location":
			cmd.FollowRedirects = true
			i++

		case arg == "-v" || arg == "--verbose" || arg == "--include-request":
			cmd.IncludeRequest = true
			i++

		case arg == "--repeat":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			repeat, err := strconv.Atoi(value)
			if err != nil || repeat < 1 {
				return nil, fmt.Errorf("invalid --repeat value %q", value)
			}
			cmd.Repeat = repeat
			i = n

		case arg == "--no-color":
			cmd.NoColor = true
			i++

		case arg == "--schema":
			value, n, err := flagValue(args, i)
			if err != nil {
				return nil, err
			}
			cmd.SchemaPath = value
			i = n

		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, fmt.Errorf("unsupported option %s", arg)

		default:
			if cmd.URL != "" {
				return nil, fmt.Errorf("unexpected argument %q (URL already given)", arg)
			}
			cmd.URL = normalizeURL(arg)
			i++
		}
	}

	if cmd.URL == "" {
		return nil, fmt.Errorf("no URL specified")
	}

	return cmd, nil
}

// Request builds the outgoing request described by the parsed command.
func (c *Command) Request() *http.Request {
	req := http.NewRequest(c.Method, c.URL)
	req.Headers = c.Headers.Clone()

	if c.Body != "" {
		req.SetBody(c.Body)
		if !req.Headers.Has("Content-Type") {
			req.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		}
	}

	if c.BasicAuth != "" {
		user, pass, _ := strings.Cut(c.BasicAuth, ":")
		req.SetBasicAuth(user, pass)
	}

	return req
}

func flagValue(args []string, i int) (string, int, error) {
	if i+1 >= len(args) {
		return "", 0, fmt.Errorf("missing value for %s", args[i])
	}
	return args[i+1], i + 2, nil
}

// normalizeURL mirrors curl's habit of assuming http:// for bare hosts.
func normalizeURL(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "http://" + raw
}
