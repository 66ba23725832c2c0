package cli

import (
	"fmt"

	"ask-ollama/internal/config"
	"ask-ollama/internal/ollama"

	"github.com/spf13/cobra"
)

type modelsOptions struct {
	URL string
}

func newModelsCmd() *cobra.Command {
	opts := &modelsOptions{}
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List models available on the Ollama server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.URL, "url", "", "override base url")
	return cmd
}

func runModels(cmd *cobra.Command, opts *modelsOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := ollama.NewClient(ollama.Config{
		BaseURL:    firstNonEmpty(opts.URL, cfg.Ollama.URL),
		Model:      cfg.Ollama.Model,
		HTTPClient: httpClient,
	})
	if err != nil {
		return err
	}

	names, err := client.Models(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
