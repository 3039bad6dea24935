package main

import (
	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-go"
)

func newRenameCmd(opts *cliOptions) *cobra.Command {
	ro := &renameOptions{opts: opts}

	cmd := &cobra.Command{
		Use:   "rename <file>",
		Short: "Suggest an AI-generated filename for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&ro.template, "template", "", "Filename template, e.g. {date}_{vendor}")
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "Write the JSON result to a file")

	return cmd
}

type renameOptions struct {
	template string
	output   string
	opts     *cliOptions
}

func (o *renameOptions) run(cmd *cobra.Command, path string) error {
	cli, err := clientFromOptions(o.opts)
	if err != nil {
		return err
	}

	var ropts *renamed.RenameOptions
	if o.template != "" {
		ropts = &renamed.RenameOptions{Template: o.template}
	}

	result, err := cli.Rename(cmd.Context(), renamed.File(path), ropts)
	if err != nil {
		return renderError(err)
	}

	if o.output != "" {
		return writeJSONFile(o.output, result)
	}
	return printJSON(cmd, result)
}
