package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-go"
)

func newSplitCmd(opts *cliOptions) *cobra.Command {
	so := &splitOptions{opts: opts}

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split a PDF into separate documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := so.complete(); err != nil {
				return err
			}
			return so.run(cmd, args[0])
		},
	}

	so.addFlags(cmd)

	return cmd
}

type splitOptions struct {
	mode          string
	pagesPerSplit int
	wait          bool
	interval      time.Duration
	download      bool
	outputDir     string
	opts          *cliOptions
	splitMode     renamed.SplitMode
}

func (o *splitOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.mode, "mode", string(renamed.SplitModeAuto), "Split mode: auto|pages|blank")
	cmd.Flags().IntVar(&o.pagesPerSplit, "pages-per-split", 0, "Pages per document (pages mode)")
	cmd.Flags().BoolVar(&o.wait, "wait", true, "Wait for the split job to finish")
	cmd.Flags().DurationVar(&o.interval, "interval", 0, "Polling interval for job status")
	cmd.Flags().BoolVar(&o.download, "download", false, "Download the split documents when ready")
	cmd.Flags().StringVarP(&o.outputDir, "output-dir", "o", ".", "Directory for downloaded documents")
}

func (o *splitOptions) complete() error {
	mode, err := parseSplitMode(o.mode)
	if err != nil {
		return err
	}
	o.splitMode = mode

	if o.splitMode == renamed.SplitModePages && o.pagesPerSplit <= 0 {
		return errors.New("flag --pages-per-split is required for pages mode")
	}
	if o.download && !o.wait {
		return errors.New("flag --download requires --wait")
	}

	return nil
}

func parseSplitMode(mode string) (renamed.SplitMode, error) {
	switch strings.ToLower(mode) {
	case string(renamed.SplitModeAuto):
		return renamed.SplitModeAuto, nil
	case string(renamed.SplitModePages):
		return renamed.SplitModePages, nil
	case string(renamed.SplitModeBlank):
		return renamed.SplitModeBlank, nil
	default:
		return "", fmt.Errorf("unsupported split mode: %s", mode)
	}
}

func (o *splitOptions) run(cmd *cobra.Command, path string) error {
	cli, err := clientFromOptions(o.opts)
	if err != nil {
		return err
	}

	job, err := cli.PDFSplit(cmd.Context(), renamed.File(path), &renamed.PDFSplitOptions{
		Mode:          o.splitMode,
		PagesPerSplit: o.pagesPerSplit,
	})
	if err != nil {
		return renderError(err)
	}

	if !o.wait {
		fmt.Fprintf(cmd.OutOrStdout(), "job submitted, status url: %s\n", job.StatusURL())
		return nil
	}

	if o.interval > 0 {
		job = job.WithPollInterval(o.interval)
	}

	result, err := job.Wait(cmd.Context(), func(s *renamed.JobStatusResponse) {
		fmt.Fprintf(cmd.ErrOrStderr(), "job %s: %s (%d%%)\n", s.JobID, s.Status, s.Progress)
	})
	if err != nil {
		return renderError(err)
	}

	if err := printJSON(cmd, result); err != nil {
		return err
	}

	if o.download {
		paths, err := cli.SaveDocuments(cmd.Context(), result, o.outputDir)
		if err != nil {
			return renderError(err)
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", p)
		}
	}

	return nil
}
