// Package jsonplaceholder implements the service.Service interface over the
// JSONPlaceholder-style /todos REST API.
package jsonplaceholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/service"
)

const (
	// TodosPath is the collection endpoint, relative to the base URL.
	TodosPath = "todos"

	// RequestIDHeader carries a per-request id for log correlation.
	RequestIDHeader = "X-Request-Id"
)

// ErrTimeout is returned when a request exceeds the configured timeout.
var ErrTimeout = errors.New("request timed out")

// Client implements service.Service over HTTP/JSON.
type Client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
	log     logrus.FieldLogger
}

// New creates a client from config. When cfg.Token is set every request
// carries it as a bearer token.
func New(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*Client, error) {
	httpClient := http.DefaultClient
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	c, err := NewWithHTTPClient(cfg.BaseURL, httpClient, log)
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		c.timeout = cfg.Timeout
	}
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, log logrus.FieldLogger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL: %q", baseURL)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		timeout: config.DefaultTimeout,
		log:     log,
	}, nil
}

// ListTasks returns up to limit tasks in API order.
func (c *Client) ListTasks(ctx context.Context, limit int) ([]service.Task, error) {
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(limit))
	endpoint := googleapi.ResolveRelative(c.baseURL, TodosPath) + "?" + q.Encode()

	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask posts a new task and returns the record the API sent back.
func (c *Client) CreateTask(ctx context.Context, task service.NewTask) (service.Task, error) {
	endpoint := googleapi.ResolveRelative(c.baseURL, TodosPath)

	var created service.Task
	if err := c.do(ctx, http.MethodPost, endpoint, task, &created); err != nil {
		return service.Task{}, err
	}
	return created, nil
}

// do sends one JSON request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"url":        endpoint,
		"request_id": reqID,
	})
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return wrapError(err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).Round(time.Millisecond),
	})
	if err := googleapi.CheckResponse(resp); err != nil {
		log.Debug("unexpected status")
		return wrapError(err)
	}
	log.Debug("request done")

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	return nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("server returned status %d: %w", apiErr.Code, err)
	}

	return err
}
