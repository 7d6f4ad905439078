// Package hive is the JSON-RPC client for a Hive condenser-API node. It
// is the only remote data source: the analysis core treats it as an
// opaque post store.
package hive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/rmaniego/hive-scrutineer/internal/models"
)

// DefaultNodeURL is the public API node used when none is configured.
const DefaultNodeURL = "https://api.hive.blog"

var (
	// ErrNodeFailed wraps transport or node-side failures after retries
	// are exhausted.
	ErrNodeFailed = errors.New("hive node request failed")
)

// Client talks to a condenser-API node over HTTP.
type Client struct {
	httpClient *http.Client
	nodeURL    string
	cache      *expirable.LRU[string, *models.Post]
}

// NewClient creates a client for the given node. cacheSize bounds the
// in-process post cache; entries expire after five minutes so repeated
// analyses of the same author reuse fetched posts.
func NewClient(nodeURL string, cacheSize int) *Client {
	if nodeURL == "" {
		nodeURL = DefaultNodeURL
	}
	if cacheSize <= 0 {
		cacheSize = 128
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		nodeURL:    nodeURL,
		cache:      expirable.NewLRU[string, *models.Post](cacheSize, nil, 5*time.Minute),
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// GetPost fetches one post by author and permlink, retrying up to retries
// times. A post the node does not know yields (nil, nil).
func (c *Client) GetPost(ctx context.Context, author, permlink string, retries int) (*models.Post, error) {
	cacheKey := author + "/" + permlink
	if post, ok := c.cache.Get(cacheKey); ok {
		return post, nil
	}

	var raw json.RawMessage
	err := c.call(ctx, "condenser_api.get_content", []interface{}{author, permlink}, retries, &raw)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeFailed, err)
	}

	// The node answers a missing post with an empty content object.
	if post.Author == "" || post.Permlink == "" {
		return nil, nil
	}

	c.cache.Add(cacheKey, &post)
	return &post, nil
}

// GetRecentPosts fetches up to limit of the author's most recent blog
// posts, newest first.
func (c *Client) GetRecentPosts(ctx context.Context, author string, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = 1
	}

	query := map[string]interface{}{"tag": author, "limit": limit}
	var raw json.RawMessage
	err := c.call(ctx, "condenser_api.get_discussions_by_blog", []interface{}{query}, 1, &raw)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeFailed, err)
	}
	return posts, nil
}

// call performs one JSON-RPC method call with a bounded retry loop.
func (c *Client) call(ctx context.Context, method string, params []interface{}, retries int, result *json.RawMessage) error {
	if retries < 1 {
		retries = 1
	}

	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNodeFailed, err)
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		lastErr = c.post(ctx, payload, result)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrNodeFailed, lastErr)
}

func (c *Client) post(ctx context.Context, payload []byte, result *json.RawMessage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.nodeURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return err
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	*result = rpcResp.Result
	return nil
}
