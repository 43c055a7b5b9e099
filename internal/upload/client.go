package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"spring-apidoc/internal/logger"
)

const (
	// DefaultBaseURL is the public Apifox open API
	DefaultBaseURL = "https://api.apifox.cn"

	// APIVersion is sent as X-Apifox-Version
	APIVersion = "2022-11-16"

	importPath     = "/v1/projects/{projectId}/import-openapi"
	defaultTimeout = 60 * time.Second
)

// Error reports a failed import. Status is 0 when no response was received.
type Error struct {
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("apifox import failed: %v", e.Err)
	}
	return fmt.Sprintf("apifox import failed: HTTP %d: %s", e.Status, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ImportResult is the decoded success response
type ImportResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type importRequest struct {
	Input string `json:"input"`
}

// Client pushes API documents into an Apifox project
type Client struct {
	BaseURL   string
	APIKey    string
	ProjectID string

	// HTTP overrides the transport; nil uses a client with a 60s timeout
	HTTP *http.Client
}

// NewClient creates a client for one project
func NewClient(baseURL, apiKey, projectID string) *Client {
	return &Client{BaseURL: baseURL, APIKey: apiKey, ProjectID: projectID}
}

func (c *Client) rest() *resty.Client {
	var rc *resty.Client
	if c.HTTP != nil {
		rc = resty.NewWithClient(c.HTTP)
	} else {
		rc = resty.New().SetTimeout(defaultTimeout)
	}
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return rc.SetBaseURL(strings.TrimRight(baseURL, "/"))
}

// Import uploads a serialized document. The request is sent once; any
// transport failure or non-2xx status comes back as *Error.
func (c *Client) Import(ctx context.Context, doc []byte) (*ImportResult, error) {
	if c.APIKey == "" || c.ProjectID == "" {
		return nil, &Error{Err: fmt.Errorf("api key and project id are required")}
	}

	logger.Debug("Uploading %d bytes to Apifox project %s", len(doc), c.ProjectID)

	resp, err := c.rest().R().
		SetContext(ctx).
		SetAuthToken(c.APIKey).
		SetHeader("X-Apifox-Version", APIVersion).
		SetHeader("Content-Type", "application/json").
		SetPathParam("projectId", c.ProjectID).
		SetBody(importRequest{Input: string(doc)}).
		Post(importPath)
	if err != nil {
		return nil, &Error{Err: err}
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return nil, &Error{
			Status: resp.StatusCode(),
			Body:   string(body),
			Err:    fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}

	result := &ImportResult{Success: true}
	if len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			logger.Warn("Apifox returned a non-JSON body: %v", err)
		}
	}
	logger.Debug("Apifox import response: %s", string(body))
	return result, nil
}
