package renamed

import (
	"context"
	"encoding/json"
	"strconv"
)

// PDFSplit submits a PDF for splitting into multiple documents and returns
// an AsyncJob handle for the server-side job.
//
// Example:
//
//	job, err := cli.PDFSplit(ctx, renamed.File("scans.pdf"), &renamed.PDFSplitOptions{
//	    Mode: renamed.SplitModeAuto,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := job.Wait(ctx, func(s *renamed.JobStatusResponse) {
//	    fmt.Printf("progress: %d%%\n", s.Progress)
//	})
func (c *client) PDFSplit(ctx context.Context, file FileInput, opts *PDFSplitOptions) (*AsyncJob, error) {
	var fields []formField
	if opts != nil {
		if opts.Mode != "" {
			fields = append(fields, formField{name: "mode", value: string(opts.Mode)})
		}
		if opts.PagesPerSplit > 0 {
			fields = append(fields, formField{name: "pagesPerSplit", value: strconv.Itoa(opts.PagesPerSplit)})
		}
	}

	respBody, err := c.uploadFile(ctx, EndpointPDFSplit, file, fields)
	if err != nil {
		return nil, err
	}

	var resp pdfSplitResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, err
	}
	if resp.StatusURL == "" {
		return nil, ErrEmptyStatusURL
	}

	return newAsyncJob(c, resp.StatusURL), nil
}
