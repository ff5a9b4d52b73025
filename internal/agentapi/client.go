// Package agentapi is a client for the Browser Use Cloud task API. The
// platform owns all browser automation; this client only creates a task,
// polls it to completion and hands back the output payload.
package agentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.browser-use.com/api/v2"

const (
	defaultPollInterval = 5 * time.Second
	defaultTaskTimeout  = 10 * time.Minute
	defaultMaxSteps     = 40
	requestTimeout      = 30 * time.Second
)

type Client struct {
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	taskTimeout  time.Duration
	maxSteps     int
	httpClient   *http.Client
	log          *zap.Logger
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

func WithMaxSteps(n int) Option {
	return func(c *Client) { c.maxSteps = n }
}

// WithTaskTimeout bounds how long RunTask waits for one remote run.
func WithTaskTimeout(d time.Duration) Option {
	return func(c *Client) { c.taskTimeout = d }
}

func NewClient(apiKey string, log *zap.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("browser-use API key is not set")
	}

	c := &Client{
		baseURL:      defaultBaseURL,
		apiKey:       apiKey,
		pollInterval: defaultPollInterval,
		taskTimeout:  defaultTaskTimeout,
		maxSteps:     defaultMaxSteps,
		httpClient:   &http.Client{Timeout: requestTimeout},
		log:          log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RunTask submits one task and blocks until the remote run reaches a
// terminal status or ctx expires. The remote run itself may take minutes;
// the caller bounds it through ctx.
func (c *Client) RunTask(ctx context.Context, task, outputSchema string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.taskTimeout)
	defer cancel()

	created, err := c.createTask(ctx, CreateTaskRequest{
		Task:                 task,
		StructuredOutputJSON: outputSchema,
		MaxSteps:             c.maxSteps,
	})
	if err != nil {
		return "", err
	}

	c.log.Debug("task created", zap.String("task_id", created.ID))

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("task %s: %w", created.ID, ctx.Err())
		case <-ticker.C:
			view, err := c.getTask(ctx, created.ID)
			if err != nil {
				return "", err
			}

			switch view.Status {
			case TaskStatusFinished:
				return view.Output, nil
			case TaskStatusStopped:
				return "", fmt.Errorf("task %s was stopped before finishing", created.ID)
			default:
				c.log.Debug("task still running",
					zap.String("task_id", created.ID),
					zap.String("status", view.Status),
				)
			}
		}
	}
}

func (c *Client) createTask(ctx context.Context, reqBody CreateTaskRequest) (*CreateTaskResponse, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(reqBody); err != nil {
		return nil, err
	}

	var res CreateTaskResponse
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", buf, &res); err != nil {
		return nil, err
	}
	if res.ID == "" {
		return nil, fmt.Errorf("create task: empty task id in response")
	}
	return &res, nil
}

func (c *Client) getTask(ctx context.Context, id string) (*TaskView, error) {
	var view TaskView
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/"+id, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("X-Browser-Use-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return fmt.Errorf("browser-use API %s %s: %s: %s", method, path, res.Status, string(b))
	}
	return json.NewDecoder(res.Body).Decode(out)
}
