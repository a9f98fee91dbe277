// Package restapi implements the service.Service interface over the task HTTP API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"taskclient/internal/config"
	"taskclient/internal/service"
)

// RequestIDHeader carries a per-request id for log correlation.
const RequestIDHeader = "X-Request-ID"

// Client implements service.Service against the task API.
type Client struct {
	apiURL   string
	tasksURL string
	timeout  time.Duration
	http     *http.Client
	log      *zap.Logger
}

// New creates a client for the API described by cfg.
func New(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	tasksURL, err := cfg.ResolveTasksURL()
	if err != nil {
		return nil, err
	}
	c := NewWithHTTPClient(cfg.APIURL, tasksURL, http.DefaultClient, logger)
	c.timeout = cfg.Timeout
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// No per-request timeout is applied.
func NewWithHTTPClient(apiURL, tasksURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiURL:   strings.TrimRight(apiURL, "/"),
		tasksURL: tasksURL,
		http:     httpClient,
		log:      logger.Named("restapi"),
	}
}

// Authenticate posts credentials to /auth/login or /auth/register and returns the access token.
func (c *Client) Authenticate(ctx context.Context, mode service.AuthMode, creds service.Credentials) (string, error) {
	if mode != service.AuthLogin && mode != service.AuthRegister {
		return "", fmt.Errorf("unknown auth mode: %s", mode)
	}

	var token oauth2.Token
	endpoint := c.apiURL + "/auth/" + string(mode)
	err := c.do(ctx, c.http, http.MethodPost, endpoint, creds, &token, authError)
	if err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", &service.AuthError{Status: http.StatusOK, Message: "missing access_token in response"}
	}
	return token.AccessToken, nil
}

// ListTasks fetches the whole task collection.
func (c *Client) ListTasks(ctx context.Context, token string) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, c.bearer(ctx, token), http.MethodGet, c.tasksURL, nil, &tasks, apiError); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, token string, in service.TaskInput) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, c.bearer(ctx, token), http.MethodPost, c.apiURL+"/tasks", in, &task, apiError)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces a task's title and description.
func (c *Client) UpdateTask(ctx context.Context, token string, id service.TaskID, in service.TaskInput) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, c.bearer(ctx, token), http.MethodPut, c.taskURL(id), in, &task, apiError)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// ShareTask grants access to another user. The response body is not interpreted.
func (c *Client) ShareTask(ctx context.Context, token string, id service.TaskID, in service.ShareInput) error {
	return c.do(ctx, c.bearer(ctx, token), http.MethodPost, c.taskURL(id)+"/share", in, nil, apiError)
}

func (c *Client) taskURL(id service.TaskID) string {
	return c.apiURL + "/tasks/" + url.PathEscape(string(id))
}

// bearer wraps the base HTTP client with a static token source, which
// attaches "Authorization: Bearer <token>" to every request.
func (c *Client) bearer(ctx context.Context, token string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return oauth2.NewClient(ctx, src)
}

// statusError builds the typed error for a non-2xx response.
type statusError func(status int, message string) error

func authError(status int, message string) error {
	return &service.AuthError{Status: status, Message: message}
}

func apiError(status int, message string) error {
	return &service.APIError{Status: status, Message: message}
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, endpoint string, body, out any, onStatus statusError) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

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
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.With(
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", requestID),
	)
	start := time.Now()

	resp, err := hc.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return wrapError(err)
	}
	defer resp.Body.Close()

	log.Debug("response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := googleapi.CheckResponse(resp); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return onStatus(gerr.Code, errorMessage(gerr))
		}
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server-provided message from an error response.
// The backend replies with {"message": "..."} or, for validation failures,
// {"message": ["...", "..."]}.
func errorMessage(gerr *googleapi.Error) string {
	if gerr.Message != "" {
		return gerr.Message
	}

	var reply struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal([]byte(gerr.Body), &reply); err != nil || len(reply.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(reply.Message, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(reply.Message, &many); err == nil {
		return strings.Join(many, ", ")
	}
	return ""
}

// wrapError classifies a transport failure.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &service.NetworkError{Err: errors.New("request timed out")}
	}
	if errors.Is(err, context.Canceled) {
		return &service.NetworkError{Err: errors.New("request cancelled")}
	}
	return &service.NetworkError{Err: err}
}
