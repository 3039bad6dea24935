package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-go"
)

func clientFromOptions(opts *cliOptions) (renamed.Client, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	options := []renamed.Option{
		renamed.WithBaseURL(cfg.BaseURL),
		renamed.WithTimeout(cfg.Timeout),
		renamed.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Debug {
		options = append(options, renamed.WithZerolog(newDebugLogger()))
	}

	return renamed.NewClient(cfg.APIKey, options...), nil
}

func newDebugLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

func printJSON(cmd *cobra.Command, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(content))
	return nil
}

func writeJSONFile(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// renderError turns typed API errors into actionable user messages.
func renderError(err error) error {
	var apiErr *renamed.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Kind {
	case renamed.KindAuthentication:
		return fmt.Errorf("%s (check your API key)", apiErr.Message)
	case renamed.KindInsufficientCredits:
		return fmt.Errorf("%s (add credits at https://www.renamed.to)", apiErr.Message)
	case renamed.KindRateLimit:
		if apiErr.RetryAfter > 0 {
			return fmt.Errorf("%s (retry after %ds)", apiErr.Message, apiErr.RetryAfter)
		}
		return err
	case renamed.KindValidation:
		return fmt.Errorf("invalid request: %s", apiErr.Message)
	default:
		return err
	}
}
