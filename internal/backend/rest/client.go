// Package rest implements the service.Service interface over a JSON HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"itasks/internal/service"
	"itasks/internal/task"
)

// maxMessageLen caps how much of a non-JSON error body ends up in a message.
const maxMessageLen = 200

// Options configures a Client.
type Options struct {
	// HTTPClient is the base client. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Token, when set, is sent as an OAuth2 bearer token.
	Token string

	// Timeout bounds each request. Zero leaves the transport defaults.
	Timeout time.Duration
}

// Client implements service.Service against a task collection URL.
// Tasks are created with POST {endpoint} and deleted with
// DELETE {endpoint}/{id}.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a client for the collection at endpoint.
func New(endpoint string, opts Options) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint: %s", endpoint)
	}

	base := opts.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}

	httpClient := base
	if opts.Token != "" {
		// oauth2 picks the base transport up from the context.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: opts.Token,
			TokenType:   "Bearer",
		}))
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = base.Timeout
	}
	if httpClient.Timeout != timeout {
		c := *httpClient
		c.Timeout = timeout
		httpClient = &c
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     httpClient,
	}, nil
}

// CreateTask posts the draft and decodes the created task from the
// response body.
func (c *Client) CreateTask(ctx context.Context, draft task.Draft) (task.Task, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return task.Task{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return task.Task{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return task.Task{}, err
	}
	defer resp.Body.Close()

	// The server answered, so decode failures keep its status code.
	var created task.Task
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return task.Task{}, &service.StatusError{Code: resp.StatusCode, Message: "decode created task: " + err.Error()}
	}
	if created.ID == "" {
		return task.Task{}, &service.StatusError{Code: resp.StatusCode, Message: "created task has no id"}
	}
	return created, nil
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("task id required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.taskURL(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) taskURL(id string) string {
	return c.endpoint + "/" + url.PathEscape(id)
}

// do sends req and turns transport failures and non-2xx responses into
// errors. On success the caller owns the response body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	if err := googleapi.CheckResponse(resp); err != nil {
		resp.Body.Close()
		return nil, wrapError(err)
	}
	return resp, nil
}

// wrapError maps API errors to service errors with readable messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &service.StatusError{Code: gerr.Code, Message: errorMessage(gerr)}
	}

	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return fmt.Errorf("request timed out: %w", err)
	}

	return err
}

func errorMessage(gerr *googleapi.Error) string {
	if gerr.Message != "" {
		return gerr.Message
	}
	msg := strings.TrimSpace(gerr.Body)
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	return msg
}
