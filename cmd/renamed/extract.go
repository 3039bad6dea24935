package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-go"
)

func newExtractCmd(opts *cliOptions) *cobra.Command {
	eo := &extractOptions{opts: opts}

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract structured data from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := eo.complete(); err != nil {
				return err
			}
			return eo.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&eo.prompt, "prompt", "", "Natural-language description of the fields to extract")
	cmd.Flags().StringVar(&eo.schema, "schema", "", "Inline JSON schema for the extracted data")
	cmd.Flags().StringVar(&eo.schemaFile, "schema-file", "", "Path to a JSON schema file")
	cmd.Flags().StringVarP(&eo.output, "output", "o", "", "Write the JSON result to a file")

	return cmd
}

type extractOptions struct {
	prompt     string
	schema     string
	schemaFile string
	output     string
	opts       *cliOptions
	schemaMap  map[string]any
}

func (o *extractOptions) complete() error {
	if o.schema != "" && o.schemaFile != "" {
		return errors.New("flags --schema and --schema-file are mutually exclusive")
	}

	raw := o.schema
	if o.schemaFile != "" {
		content, err := os.ReadFile(o.schemaFile)
		if err != nil {
			return fmt.Errorf("read schema file: %w", err)
		}
		raw = string(content)
	}

	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &o.schemaMap); err != nil {
			return fmt.Errorf("parse schema: %w", err)
		}
	}

	if o.prompt == "" && o.schemaMap == nil {
		return errors.New("at least one of --prompt, --schema or --schema-file is required")
	}

	return nil
}

func (o *extractOptions) run(cmd *cobra.Command, path string) error {
	cli, err := clientFromOptions(o.opts)
	if err != nil {
		return err
	}

	result, err := cli.Extract(cmd.Context(), renamed.File(path), &renamed.ExtractOptions{
		Prompt: o.prompt,
		Schema: o.schemaMap,
	})
	if err != nil {
		return renderError(err)
	}

	if o.output != "" {
		return writeJSONFile(o.output, result)
	}
	return printJSON(cmd, result)
}
