package renamed

// RenameResult is the outcome of a rename operation.
type RenameResult struct {
	OriginalFilename  string  `json:"originalFilename"`
	SuggestedFilename string  `json:"suggestedFilename"`
	FolderPath        string  `json:"folderPath,omitempty"` // Suggested folder for organization
	Confidence        float64 `json:"confidence"`           // Confidence score (0-1)
}

// RenameOptions are optional parameters for the rename operation.
type RenameOptions struct {
	// Template is a custom template for filename generation.
	Template string
}

// SplitMode selects how a PDF is divided into documents.
type SplitMode string

const (
	SplitModeAuto  SplitMode = "auto"  // AI-detected document boundaries
	SplitModePages SplitMode = "pages" // Every N pages
	SplitModeBlank SplitMode = "blank" // At blank pages
)

// PDFSplitOptions are optional parameters for the pdf-split operation.
type PDFSplitOptions struct {
	Mode SplitMode

	// PagesPerSplit is the number of pages per document (pages mode only).
	PagesPerSplit int
}

// JobStatus enumerates async job states.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether the status is one polling stops at.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// SplitDocument is a single document produced by a PDF split.
type SplitDocument struct {
	Index       int    `json:"index"`
	Filename    string `json:"filename"`
	Pages       string `json:"pages"` // Page range, e.g. "1-3"
	DownloadURL string `json:"downloadUrl"`
	Size        int64  `json:"size"`
}

// PDFSplitResult is the final result of a pdf-split job.
type PDFSplitResult struct {
	OriginalFilename string          `json:"originalFilename"`
	Documents        []SplitDocument `json:"documents"`
	TotalPages       int             `json:"totalPages"`
}

// JobStatusResponse is one point-in-time snapshot of an async job. A new
// snapshot is fetched on every poll; it is never mutated in place.
type JobStatusResponse struct {
	JobID    string          `json:"jobId"`
	Status   JobStatus       `json:"status"`
	Progress int             `json:"progress,omitempty"` // 0-100
	Error    string          `json:"error,omitempty"`    // Set when Status is failed
	Result   *PDFSplitResult `json:"result,omitempty"`   // Set when Status is completed
}

// ExtractOptions are optional parameters for the extract operation.
type ExtractOptions struct {
	// Schema is a JSON schema describing the fields to extract.
	Schema map[string]any

	// Prompt is a natural-language description of what to extract.
	Prompt string
}

// ExtractResult is the outcome of an extract operation.
type ExtractResult struct {
	Data       map[string]any `json:"data"`
	Confidence float64        `json:"confidence"` // Confidence score (0-1)
}

// Team is the team a user belongs to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the account profile returned by the user endpoint.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Credits int    `json:"credits,omitempty"`
	Team    *Team  `json:"team,omitempty"`
}

// pdfSplitResponse is the immediate response from the pdf-split endpoint.
type pdfSplitResponse struct {
	StatusURL string `json:"statusUrl"`
}
