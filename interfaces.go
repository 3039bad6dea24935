package renamed

import (
	"context"
	"io"
)

// Info provides metadata about the client
type Info interface {
	Name() string
	Version() string
}

// Renamer suggests filenames for uploaded documents
type Renamer interface {
	Rename(ctx context.Context, file FileInput, opts *RenameOptions) (*RenameResult, error)
}

// Splitter submits PDF split jobs and returns pollable handles
type Splitter interface {
	PDFSplit(ctx context.Context, file FileInput, opts *PDFSplitOptions) (*AsyncJob, error)
}

// Extractor pulls structured data out of documents
type Extractor interface {
	Extract(ctx context.Context, file FileInput, opts *ExtractOptions) (*ExtractResult, error)
}

// Accounts exposes the account profile endpoint
type Accounts interface {
	GetUser(ctx context.Context) (*User, error)
}

// Downloader handles artifact download operations
type Downloader interface {
	DownloadFile(ctx context.Context, url string) ([]byte, error)
	DownloadFileTo(ctx context.Context, url string, dst io.Writer) error
	SaveDocuments(ctx context.Context, result *PDFSplitResult, dir string) ([]string, error)
}

// Client combines all renamed.to operations
type Client interface {
	Info
	Renamer
	Splitter
	Extractor
	Accounts
	Downloader
}
