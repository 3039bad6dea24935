package main

import (
	"github.com/spf13/cobra"
)

func newUserCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the current account profile and credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := clientFromOptions(opts)
			if err != nil {
				return err
			}

			user, err := cli.GetUser(cmd.Context())
			if err != nil {
				return renderError(err)
			}

			return printJSON(cmd, user)
		},
	}
}
