package renamed

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// AsyncJob is a handle to a server-side long-running operation. The handle
// holds configuration only; every poll fetches a fresh status snapshot. It is
// immutable after creation, so one handle may be shared across goroutines.
type AsyncJob struct {
	client       *client
	statusURL    string
	pollInterval time.Duration
	maxAttempts  int
}

func newAsyncJob(c *client, statusURL string) *AsyncJob {
	return &AsyncJob{
		client:       c,
		statusURL:    statusURL,
		pollInterval: c.pollInterval,
		maxAttempts:  c.maxPollAttempts,
	}
}

// StatusURL returns the endpoint the job is polled at.
func (j *AsyncJob) StatusURL() string {
	return j.statusURL
}

// WithPollInterval returns a copy of the handle polling at the given spacing.
func (j *AsyncJob) WithPollInterval(interval time.Duration) *AsyncJob {
	job := *j
	if interval > 0 {
		job.pollInterval = interval
	}
	return &job
}

// WithMaxAttempts returns a copy of the handle with the given poll ceiling.
func (j *AsyncJob) WithMaxAttempts(attempts int) *AsyncJob {
	job := *j
	if attempts > 0 {
		job.maxAttempts = attempts
	}
	return &job
}

// Status fetches the current job status. It performs exactly one request and
// never sleeps or loops.
func (j *AsyncJob) Status(ctx context.Context) (*JobStatusResponse, error) {
	if j.statusURL == "" {
		return nil, ErrEmptyStatusURL
	}

	respBody, err := j.client.request(ctx, http.MethodGet, j.statusURL, nil, "")
	if err != nil {
		return nil, err
	}

	var status JobStatusResponse
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// ProgressCallback receives every snapshot Wait observes, including
// non-terminal ones.
type ProgressCallback func(*JobStatusResponse)

// Wait polls until the job reaches a terminal state, invoking onProgress with
// each snapshot before termination is evaluated. A completed snapshot wins
// over a simultaneously populated error field. Cancellation is honored both
// before each poll and during the inter-poll sleep. After maxAttempts
// non-terminal snapshots Wait gives up with a job error.
func (j *AsyncJob) Wait(ctx context.Context, onProgress ProgressCallback) (*PDFSplitResult, error) {
	for attempt := 0; attempt < j.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := j.Status(ctx)
		if err != nil {
			return nil, err
		}

		j.logStatus(status)

		if onProgress != nil {
			onProgress(status)
		}

		switch status.Status {
		case JobStatusCompleted:
			if status.Result == nil {
				return nil, newJobError("Job completed without a result", status.JobID)
			}
			return status.Result, nil
		case JobStatusFailed:
			message := status.Error
			if message == "" {
				message = "Job failed"
			}
			return nil, newJobError(message, status.JobID)
		}

		if attempt+1 < j.maxAttempts {
			if err := sleepContext(ctx, j.pollInterval); err != nil {
				return nil, err
			}
		}
	}

	return nil, newJobError("Job polling timeout exceeded", "")
}

func (j *AsyncJob) logStatus(status *JobStatusResponse) {
	id := status.JobID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		id = "unknown"
	}
	j.client.logf("Job %s: %s (%d%%)", id, status.Status, status.Progress)
}
