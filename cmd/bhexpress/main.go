// Command bhexpress sends raw requests to the BHExpress API.
//
//	bhexpress get /boletas
//	bhexpress post /boletas --data @boleta.json
//	bhexpress delete /boletas/123 --no-raise -H 'X-Reason: duplicated'
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	bhexpress "github.com/bhexpress/client-go"
)

// Config holds the streams used by the command.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

type flags struct {
	token      string
	url        string
	apiVersion string
	noRaise    bool
	timeout    time.Duration
	envFiles   []string
	configFile string
	verbose    bool
	headers    []string
}

func run(args []string, cfg Config) error {
	cmd := newRootCmd(cfg)
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(cfg Config) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:          "bhexpress",
		Short:        "Send requests to the BHExpress API",
		SilenceUsage: true,
	}
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.token, "token", "", "API token (default $"+bhexpress.EnvToken+")")
	pf.StringVar(&f.url, "url", "", "API base URL (default $"+bhexpress.EnvBaseURL+" or "+bhexpress.DefaultBaseURL+")")
	pf.StringVar(&f.apiVersion, "api-version", "", "API version (default "+bhexpress.DefaultVersion+")")
	pf.BoolVar(&f.noRaise, "no-raise", false, "print non-200 responses instead of failing")
	pf.DurationVar(&f.timeout, "timeout", 0, "request timeout")
	pf.StringSliceVar(&f.envFiles, "env-file", nil, ".env file to read settings from (repeatable)")
	pf.StringVar(&f.configFile, "config", "", "config file with api_token, api_url and api_version")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log requests to stderr")
	pf.StringArrayVarP(&f.headers, "header", "H", nil, "extra header 'Name: value' (repeatable)")

	root.AddCommand(
		newVerbCmd(cfg, f, "get", false),
		newVerbCmd(cfg, f, "delete", false),
		newVerbCmd(cfg, f, "post", true),
		newVerbCmd(cfg, f, "put", true),
	)

	return root
}

func newVerbCmd(cfg Config, f *flags, verb string, withBody bool) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   verb + " <resource>",
		Short: "Send a " + strings.ToUpper(verb) + " request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := parseHeaders(f.headers)
			if err != nil {
				return err
			}

			var body any
			if withBody {
				body, err = loadData(data, cfg.Stdin)
				if err != nil {
					return err
				}
			}

			logger := newLogger(f.verbose, cfg.Stderr)
			defer func() { _ = logger.Sync() }()

			client, err := newClient(f, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var resp *bhexpress.Response
			switch verb {
			case "get":
				resp, err = client.Get(ctx, args[0], headers)
			case "delete":
				resp, err = client.Delete(ctx, args[0], headers)
			case "post":
				resp, err = client.Post(ctx, args[0], body, headers)
			case "put":
				resp, err = client.Put(ctx, args[0], body, headers)
			}
			if err != nil {
				return err
			}

			if resp.StatusCode != 200 {
				fmt.Fprintln(cfg.Stderr, resp.Status)
			}
			_, err = cfg.Stdout.Write(resp.Body)
			return err
		},
	}

	if withBody {
		cmd.Flags().StringVarP(&data, "data", "d", "", "request body; @file reads a file, - reads stdin")
	}

	return cmd
}

// newLogger returns a development console logger writing to w, or a no-op
// logger when verbose is off.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func newClient(f *flags, logger *zap.Logger) (*bhexpress.Client, error) {
	opts := []bhexpress.Option{
		bhexpress.WithToken(f.token),
		bhexpress.WithBaseURL(f.url),
		bhexpress.WithVersion(f.apiVersion),
		bhexpress.WithRaiseForStatus(!f.noRaise),
		bhexpress.WithLogger(logger),
	}
	if f.timeout > 0 {
		opts = append(opts, bhexpress.WithTimeout(f.timeout))
	}
	if len(f.envFiles) > 0 {
		opts = append(opts, bhexpress.WithDotEnv(f.envFiles...))
	}
	if f.configFile != "" {
		opts = append(opts, bhexpress.WithConfigFile(f.configFile))
	}
	return bhexpress.New(opts...)
}

// parseHeaders parses 'Name: value' pairs. Names keep their spelling.
func parseHeaders(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: want 'Name: value'", h)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

// loadData returns the request body for --data. The body is sent verbatim.
func loadData(data string, stdin io.Reader) (any, error) {
	switch {
	case data == "":
		return nil, nil
	case data == "-":
		if stdin == nil {
			return nil, errors.New("no stdin to read data from")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	case strings.HasPrefix(data, "@"):
		b, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		return b, nil
	default:
		return data, nil
	}
}
