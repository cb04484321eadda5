// Package activityfeed implements the txsync.ActivityFeed interface against
// the REST transaction-history API.
package activityfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/txledger/internal/activity"
	"github.com/gabapcia/txledger/internal/txsync"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus indicates the activity API answered with a non-200
// status code.
var ErrUnexpectedStatus = fmt.Errorf("activity feed returned unexpected status")

// client fetches activity records over HTTP with retries handled by the
// underlying retryable client.
type client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// Ensure compile-time compliance with the txsync.ActivityFeed interface.
var _ txsync.ActivityFeed = (*client)(nil)

// NewClient creates an activity-feed client rooted at the given base URL.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *client {
	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// activityResponse is the wire envelope of the activity endpoint.
type activityResponse struct {
	Transactions []activity.RawTransaction `json:"transactions"`
}

// FetchActivity retrieves every activity record for the address on the given
// chain from GET {base}/v1/activity.
func (c *client) FetchActivity(ctx context.Context, address string, chainID int) ([]activity.RawTransaction, error) {
	endpoint, err := url.Parse(c.baseURL + "/v1/activity")
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("address", address)
	query.Set("chainId", strconv.Itoa(chainID))
	endpoint.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var payload activityResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.Transactions, nil
}
