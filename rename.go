package renamed

import (
	"context"
	"encoding/json"
)

// Rename uploads a document and returns an AI-suggested filename.
//
// Example:
//
//	result, err := cli.Rename(ctx, renamed.File("invoice.pdf"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.SuggestedFilename)
func (c *client) Rename(ctx context.Context, file FileInput, opts *RenameOptions) (*RenameResult, error) {
	var fields []formField
	if opts != nil && opts.Template != "" {
		fields = append(fields, formField{name: "template", value: opts.Template})
	}

	respBody, err := c.uploadFile(ctx, EndpointRename, file, fields)
	if err != nil {
		return nil, err
	}

	var result RenameResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
