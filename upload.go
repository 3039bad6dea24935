package renamed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// FileInput is a closed variant over the accepted file sources: a filesystem
// path, an in-memory byte slice, or a reader. Inputs are normalized to a byte
// payload plus a resolved filename at the upload boundary, never deeper.
type FileInput struct {
	path   string
	data   []byte
	reader io.Reader
	name   string
}

// File selects a file on disk. The multipart filename is its base name.
func File(path string) FileInput {
	return FileInput{path: path}
}

// FileFromBytes uploads an in-memory payload under the given filename.
func FileFromBytes(filename string, data []byte) FileInput {
	return FileInput{name: filename, data: data}
}

// FileFromReader uploads everything read from r under the given filename.
func FileFromReader(filename string, r io.Reader) FileInput {
	return FileInput{name: filename, reader: r}
}

func (f FileInput) normalize() (string, []byte, error) {
	switch {
	case f.path != "":
		content, err := os.ReadFile(f.path)
		if err != nil {
			return "", nil, err
		}
		return filepath.Base(f.path), content, nil
	case f.data != nil:
		if f.name == "" {
			return "", nil, ErrMissingFilename
		}
		return f.name, f.data, nil
	case f.reader != nil:
		if f.name == "" {
			return "", nil, ErrMissingFilename
		}
		content, err := io.ReadAll(f.reader)
		if err != nil {
			return "", nil, err
		}
		return f.name, content, nil
	default:
		return "", nil, ErrEmptyFile
	}
}

// mimeTypes covers the file formats the API accepts; anything else is sent
// as an octet stream.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
}

func getMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}

// formatFileSize renders a byte count as B, KB or MB with one decimal.
func formatFileSize(size int64) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// formField is one scalar multipart field. Fields are encoded in the order
// the operation supplies them.
type formField struct {
	name  string
	value string
}

// uploadFile encodes the file and scalar fields as a multipart body and
// sends it through the retry policy. The file travels as a single part named
// "file" carrying the resolved filename and inferred content type.
func (c *client) uploadFile(ctx context.Context, path string, file FileInput, fields []formField) ([]byte, error) {
	filename, content, err := file.normalize()
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, ErrEmptyFile
	}

	c.logf("Upload: %s (%s)", filename, formatFileSize(int64(len(content))))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", getMIMEType(filename))

	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}

	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return c.request(ctx, http.MethodPost, path, buf.Bytes(), writer.FormDataContentType())
}
