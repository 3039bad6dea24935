package renamed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jobServer serves a pdf-split submission plus a scripted sequence of status
// snapshots. Once the script runs out the last snapshot repeats.
type jobServer struct {
	server    *httptest.Server
	snapshots []JobStatusResponse
	statusGET int
}

func newJobServer(t *testing.T, snapshots ...JobStatusResponse) *jobServer {
	t.Helper()

	js := &jobServer{snapshots: snapshots}
	mux := http.NewServeMux()
	mux.HandleFunc("/pdf-split", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]string{"statusUrl": js.server.URL + "/jobs/job_123/status"})
	})
	mux.HandleFunc("/jobs/job_123/status", func(w http.ResponseWriter, r *http.Request) {
		idx := js.statusGET
		if idx >= len(js.snapshots) {
			idx = len(js.snapshots) - 1
		}
		js.statusGET++
		json.NewEncoder(w).Encode(js.snapshots[idx])
	})

	js.server = httptest.NewServer(mux)
	t.Cleanup(js.server.Close)
	return js
}

func (js *jobServer) submit(t *testing.T, opts ...Option) *AsyncJob {
	t.Helper()

	cli := newTestClient(js.server.URL, opts...)
	job, err := cli.PDFSplit(context.Background(), FileFromBytes("multi.pdf", []byte("pdf")), &PDFSplitOptions{
		Mode: SplitModeAuto,
	})
	require.NoError(t, err)
	return job
}

func splitResult() *PDFSplitResult {
	return &PDFSplitResult{
		OriginalFilename: "multi.pdf",
		TotalPages:       6,
		Documents: []SplitDocument{
			{Index: 0, Filename: "part-1.pdf", Pages: "1-3"},
			{Index: 1, Filename: "part-2.pdf", Pages: "4-6"},
		},
	}
}

func TestPDFSplitReturnsJobHandle(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusPending})

	job := js.submit(t)
	assert.Equal(t, js.server.URL+"/jobs/job_123/status", job.StatusURL())
	assert.Equal(t, DefaultPollInterval, job.pollInterval)
	assert.Equal(t, DefaultMaxPollAttempts, job.maxAttempts)
}

func TestJobStatusSingleSnapshot(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusProcessing, Progress: 10})

	job := js.submit(t)
	for i := 0; i < 3; i++ {
		status, err := job.Status(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "job_123", status.JobID)
		assert.Equal(t, JobStatusProcessing, status.Status)
	}
	assert.Equal(t, 3, js.statusGET)
}

func TestWaitCompletes(t *testing.T) {
	js := newJobServer(t,
		JobStatusResponse{JobID: "job_123", Status: JobStatusPending},
		JobStatusResponse{JobID: "job_123", Status: JobStatusProcessing, Progress: 40},
		JobStatusResponse{JobID: "job_123", Status: JobStatusCompleted, Progress: 100, Result: splitResult()},
	)

	job := js.submit(t).WithPollInterval(time.Millisecond)

	var observed []JobStatus
	result, err := job.Wait(context.Background(), func(s *JobStatusResponse) {
		observed = append(observed, s.Status)
	})
	require.NoError(t, err)
	assert.Equal(t, "multi.pdf", result.OriginalFilename)
	assert.Len(t, result.Documents, 2)

	assert.Equal(t, []JobStatus{JobStatusPending, JobStatusProcessing, JobStatusCompleted}, observed)
	assert.Equal(t, 3, js.statusGET, "wait must stop polling after the first terminal snapshot")
}

func TestWaitImmediateCompletion(t *testing.T) {
	// Fast jobs may go terminal without ever being observed mid-flight.
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusCompleted, Result: splitResult()})

	job := js.submit(t).WithPollInterval(time.Millisecond)
	result, err := job.Wait(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalPages)
	assert.Equal(t, 1, js.statusGET)
}

func TestWaitFailure(t *testing.T) {
	js := newJobServer(t,
		JobStatusResponse{JobID: "job_123", Status: JobStatusProcessing, Progress: 10},
		JobStatusResponse{JobID: "job_123", Status: JobStatusFailed, Error: "password-protected PDF"},
	)

	job := js.submit(t).WithPollInterval(time.Millisecond)
	_, err := job.Wait(context.Background(), nil)
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindJob, apiErr.Kind)
	assert.Equal(t, "password-protected PDF", apiErr.Message)
	assert.Equal(t, "job_123", apiErr.JobID)
	assert.Equal(t, 2, js.statusGET)
}

func TestWaitPollingCeiling(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusProcessing, Progress: 50})

	job := js.submit(t).WithPollInterval(time.Microsecond).WithMaxAttempts(150)

	var callbacks int
	_, err := job.Wait(context.Background(), func(*JobStatusResponse) { callbacks++ })
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindJob, apiErr.Kind)
	assert.Equal(t, "Job polling timeout exceeded", apiErr.Message)
	assert.Empty(t, apiErr.JobID)

	assert.Equal(t, 150, js.statusGET, "wait must not exceed the poll ceiling")
	assert.Equal(t, 150, callbacks)
}

func TestWaitCompletedWinsOverErrorField(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{
		JobID:  "job_123",
		Status: JobStatusCompleted,
		Error:  "stale error from a previous attempt",
		Result: splitResult(),
	})

	job := js.submit(t).WithPollInterval(time.Millisecond)
	result, err := job.Wait(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestWaitCompletedWithoutResult(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusCompleted})

	job := js.submit(t).WithPollInterval(time.Millisecond)
	_, err := job.Wait(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindJob))
	assert.Equal(t, 1, js.statusGET, "a malformed terminal snapshot must still terminate the wait")
}

func TestWaitCancellationDuringSleep(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusProcessing})

	job := js.submit(t).WithPollInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := job.Wait(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancellation must abort the in-progress sleep")
	assert.Equal(t, 1, js.statusGET)
}

func TestWaitCancellationBeforeFirstPoll(t *testing.T) {
	js := newJobServer(t, JobStatusResponse{JobID: "job_123", Status: JobStatusProcessing})

	job := js.submit(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := job.Wait(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, js.statusGET)
}

func TestWaitSurfacesStatusErrors(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid API key"})
	}))
	defer server.Close()

	cli := newTestClient(server.URL, WithMaxRetries(3))
	job := newAsyncJob(cli, server.URL+"/jobs/x/status").WithPollInterval(time.Millisecond)

	_, err := job.Wait(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuthentication))
	assert.Equal(t, 1, hits, "4xx status fetches must not be retried")
}

func TestJobHandleBuildersCopy(t *testing.T) {
	cli := newTestClient("http://localhost:0")
	job := newAsyncJob(cli, "http://example.com/jobs/1/status")

	tuned := job.WithPollInterval(time.Second).WithMaxAttempts(10)
	assert.Equal(t, time.Second, tuned.pollInterval)
	assert.Equal(t, 10, tuned.maxAttempts)

	// The original handle is untouched.
	assert.Equal(t, DefaultPollInterval, job.pollInterval)
	assert.Equal(t, DefaultMaxPollAttempts, job.maxAttempts)

	// Non-positive values are ignored.
	same := tuned.WithPollInterval(0).WithMaxAttempts(-1)
	assert.Equal(t, time.Second, same.pollInterval)
	assert.Equal(t, 10, same.maxAttempts)
}

func TestJobStatusTerminal(t *testing.T) {
	assert.False(t, JobStatusPending.Terminal())
	assert.False(t, JobStatusProcessing.Terminal())
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusFailed.Terminal())
}

func TestStatusRequiresURL(t *testing.T) {
	cli := newTestClient("http://localhost:0")
	job := newAsyncJob(cli, "")

	_, err := job.Status(context.Background())
	assert.ErrorIs(t, err, ErrEmptyStatusURL)
}
