package renamed

import (
	"context"
	"encoding/json"
)

// Extract pulls structured data out of a document. The fields to extract are
// described by a prompt, a JSON schema, or both.
//
// Example:
//
//	result, err := cli.Extract(ctx, renamed.File("invoice.pdf"), &renamed.ExtractOptions{
//	    Prompt: "Extract invoice number, date, and total",
//	})
func (c *client) Extract(ctx context.Context, file FileInput, opts *ExtractOptions) (*ExtractResult, error) {
	var fields []formField
	if opts != nil {
		if opts.Prompt != "" {
			fields = append(fields, formField{name: "prompt", value: opts.Prompt})
		}
		if opts.Schema != nil {
			schemaJSON, err := json.Marshal(opts.Schema)
			if err != nil {
				return nil, err
			}
			fields = append(fields, formField{name: "schema", value: string(schemaJSON)})
		}
	}

	respBody, err := c.uploadFile(ctx, EndpointExtract, file, fields)
	if err != nil {
		return nil, err
	}

	var result ExtractResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
