package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"secretgrid/adapters/file"
	"secretgrid/adapters/terminal"
	"secretgrid/adapters/web"
	"secretgrid/app"
	"secretgrid/domain/document"
	"secretgrid/internal"
	"secretgrid/internal/config"
	"secretgrid/ports"
)

var version = "dev"

func main() {
	// A missing .env is normal; the environment is used as is.
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		filePath string
		format   string
		timeout  time.Duration
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "secretgrid [url]",
		Short: "Decode a secret message published as a table of glyph coordinates",
		Long: `Fetch a published document, read every table row of the form
(x, glyph, y) or (x, y, glyph), and plot the glyphs on a character grid.

Recognized glyphs are █, ░ and ▀. Rows that do not fit are skipped.

Configuration is read from the environment (and an optional .env file):
- SECRETGRID_URL (default: the published secret message document)
- SECRETGRID_FORMAT (html|csv|xlsx; default: detect)
- SECRETGRID_TIMEOUT (e.g. 10s; default: none)
- SECRETGRID_USER_AGENT
- LOG_LEVEL (ERROR|WARN|INFO|DEBUG|TRACE; default: WARN)

Example: secretgrid https://docs.google.com/document/d/e/<id>/pub`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Source.URL = args[0]
			}
			if cmd.Flags().Changed("file") {
				cfg.Source.File = filePath
			}
			if cmd.Flags().Changed("format") {
				cfg.Source.Format = format
			}
			if cmd.Flags().Changed("timeout") {
				cfg.HTTP.Timeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level, internal.LogLevelWarn))
			if verbose {
				logger.SetLevel(internal.LogLevelDebug)
			}

			return runDecode(cmd.Context(), cfg, logger, stdout)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Read the document from a local file instead of a URL")
	cmd.Flags().StringVar(&format, "format", "", "Document format: html, csv or xlsx (default: detect)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout (default: none)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "secretgrid %s\n", version)
		},
	}
}

func runDecode(ctx context.Context, cfg *config.Config, logger *internal.Logger, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var fetcher ports.DocumentFetcher
	if cfg.Source.File != "" {
		fetcher = file.NewReader(logger)
	} else {
		fetcher = web.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)
	}

	format, _ := document.ParseFormat(cfg.Source.Format)
	decoder := app.NewDecoder(fetcher, app.DefaultExtractors(logger), format, logger)

	return decoder.Run(ctx, cfg.Location(), terminal.NewRenderer(stdout))
}
