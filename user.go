package renamed

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetUser returns the current account profile, including remaining credits.
//
// Example:
//
//	user, err := cli.GetUser(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Credits remaining: %d\n", user.Credits)
func (c *client) GetUser(ctx context.Context) (*User, error) {
	respBody, err := c.request(ctx, http.MethodGet, EndpointUser, nil, "")
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(respBody, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
