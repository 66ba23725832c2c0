package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"ask-ollama/internal/config"
	"ask-ollama/internal/ollama"
	"ask-ollama/internal/query"

	"github.com/spf13/cobra"
)

// shared transport for every command invocation; safe for concurrent use
// and carries no per-request state.
var httpClient = &http.Client{}

type askOptions struct {
	InputFile string
	Model     string
	URL       string
	Timeout   time.Duration
}

func newAskCmd() *cobra.Command {
	opts := &askOptions{}
	cmd := &cobra.Command{
		Use:   "ask [text...]",
		Short: "Send a query to the configured Ollama server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.InputFile, "file", "F", "", "query file, use -F- for stdin")
	cmd.Flags().StringVar(&opts.Model, "model", "", "override model name")
	cmd.Flags().StringVar(&opts.URL, "url", "", "override base url")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "override request timeout (0 means no deadline)")
	return cmd
}

func runAsk(cmd *cobra.Command, opts *askOptions, args []string) error {
	raw, err := readInput(args, opts.InputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := ollama.NewClient(ollama.Config{
		BaseURL:    firstNonEmpty(opts.URL, cfg.Ollama.URL),
		Model:      firstNonEmpty(opts.Model, cfg.Ollama.Model),
		HTTPClient: httpClient,
	})
	if err != nil {
		return err
	}

	processor := query.NewProcessor(query.Triggers{
		Clipboard: cfg.Triggers.Clipboard,
		Send:      cfg.Triggers.Send,
	}, query.SystemClipboard{}, client)

	ctx := cmd.Context()
	timeout := cfg.Ollama.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = opts.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := processor.Process(ctx, raw, func(delta string) error {
		_, writeErr := fmt.Fprint(cmd.OutOrStdout(), delta)
		return writeErr
	})
	if err != nil {
		return err
	}
	if result.Hint != "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Hint)
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

func readInput(args []string, inputFile string, stdin io.Reader) (string, error) {
	if inputFile != "" && len(args) > 0 {
		return "", fmt.Errorf("input args and -F are mutually exclusive")
	}
	if inputFile == "" {
		if len(args) == 0 {
			return "", fmt.Errorf("missing input: provide args or -F")
		}
		return strings.Join(args, " "), nil
	}
	if inputFile == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return trimTrailingNewline(string(data)), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(value string) string {
	return strings.TrimRight(value, "\r\n")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
