package renamed

import "time"

const (
	ServiceName    = "renamed"
	DefaultBaseURL = "https://www.renamed.to/api/v1"
	DefaultTimeout = 30 * time.Second
	APIVersion     = "v1"

	// DefaultMaxRetries is the number of retries after the initial attempt.
	DefaultMaxRetries = 2

	// DefaultPollInterval and DefaultMaxPollAttempts give async jobs a
	// five-minute polling ceiling (150 polls at 2s spacing).
	DefaultPollInterval    = 2 * time.Second
	DefaultMaxPollAttempts = 150
)

// API endpoints
const (
	EndpointRename   = "/rename"
	EndpointPDFSplit = "/pdf-split"
	EndpointExtract  = "/extract"
	EndpointUser     = "/user"
)
