package main

import (
	"time"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "renamed",
		Short:         "renamed.to API CLI helper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "renamed.to API key (or set RENAMED_API_KEY)")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Base URL for the renamed.to API")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout for API requests")
	cmd.PersistentFlags().IntVar(&opts.maxRetries, "max-retries", -1, "Retries for failed requests")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path (default ~/.renamed.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newRenameCmd(opts))
	cmd.AddCommand(newSplitCmd(opts))
	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newUserCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}
