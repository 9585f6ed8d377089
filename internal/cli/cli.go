package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/patrickayoup/gobunpro/internal/client"
	"github.com/patrickayoup/gobunpro/internal/config"
	"github.com/patrickayoup/gobunpro/internal/service"
	"github.com/patrickayoup/gobunpro/pkg/validator"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2

	cmdStudyQueue  = "study-queue"
	cmdRecentItems = "recent-items"
)

// Run executes the command line in args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := newGlobalFlags(stderr)
	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return ExitUsage
	}

	cfg, err := config.Init(global)
	if err != nil {
		printConfigError(stderr, err)
		return ExitUsage
	}

	logger := setupLogger(cfg.Debug, stderr)
	defer func() { _ = logger.Sync() }()
	logger.Debug("debug mode enabled")

	api := client.NewBunproAPI(cfg.APIKey,
		client.WithBaseURL(cfg.BaseURL),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithLogger(logger.Named("client")),
	)
	services := service.InitServices(api, logger.Named("service"))

	format := service.FormatText
	if cfg.JSON {
		format = service.FormatJSON
	}

	var out string
	switch rest[0] {
	case cmdStudyQueue:
		fs := newCommandFlags(cmdStudyQueue, stderr)
		if code, ok := parseCommand(fs, rest[1:], stderr); !ok {
			return code
		}
		out, err = services.StudyQueue(ctx, format)
	case cmdRecentItems:
		fs := newCommandFlags(cmdRecentItems, stderr)
		limit := fs.Int("limit", 0, fmt.Sprintf("number of items to return (%d-%d)", client.MinLimit, client.MaxLimit))
		if code, ok := parseCommand(fs, rest[1:], stderr); !ok {
			return code
		}
		var opts []client.CallOption
		if fs.Changed("limit") {
			opts = append(opts, client.WithLimit(*limit))
		}
		out, err = services.RecentItems(ctx, format, opts...)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", rest[0])
		global.Usage()
		return ExitUsage
	}

	if err != nil {
		logger.Debug("command failed", zap.String("command", rest[0]), zap.Error(err))
		printError(stderr, err)
		return ExitFailure
	}

	fmt.Fprintln(stdout, out)
	return ExitOK
}

func newGlobalFlags(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("bunpro", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)

	fs.String("api-key", "", "Bunpro API key (env BUNPRO_API_KEY)")
	fs.Bool("debug", false, "enable debug logging")
	fs.Bool("json", false, "print results as JSON")
	fs.String("base-url", client.DefaultBaseURL, "Bunpro user API base URL")
	fs.Duration("timeout", client.DefaultTimeout, "HTTP request timeout")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bunpro [flags] <command> [command flags]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  %-14s show the review queue\n", cmdStudyQueue)
		fmt.Fprintf(stderr, "  %-14s show recently added grammar points\n\n", cmdRecentItems)
		fmt.Fprintf(stderr, "Flags:\n%s", fs.FlagUsages())
	}
	return fs
}

func newCommandFlags(name string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parseCommand(fs *pflag.FlagSet, args []string, stderr io.Writer) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return ExitUsage, false
	}
	return ExitOK, true
}

func printConfigError(w io.Writer, err error) {
	var vErr *validator.ValidationError
	if !errors.As(err, &vErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if vErr.Has("api_key") {
		fmt.Fprintln(w, "Error: --api-key is required")
	}
	for _, line := range vErr.Messages() {
		if strings.HasPrefix(line, "api_key: ") {
			continue
		}
		fmt.Fprintf(w, "Error: %s\n", line)
	}
}

func printError(w io.Writer, err error) {
	var (
		apiErr    *client.APIError
		schemaErr *client.SchemaError
	)
	switch {
	case errors.As(err, &apiErr):
		if len(apiErr.Messages) == 0 {
			fmt.Fprintf(w, "Error: %s\n", apiErr.Error())
			return
		}
		for _, msg := range apiErr.Messages {
			fmt.Fprintf(w, "Error: %s\n", msg)
		}
	case errors.As(err, &schemaErr):
		fmt.Fprintf(w, "Error: invalid %s in response\n", schemaErr.Section)
		for _, msg := range schemaErr.Err.Messages() {
			fmt.Fprintf(w, "  %s\n", msg)
		}
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
