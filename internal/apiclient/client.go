package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// Client talks to the remote memorial-park API
type Client struct {
	baseURL     string
	actorHeader string
	httpClient  *http.Client
	logger      *logger.Logger
}

// envelope is the remote API's standard response wrapper
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewClient creates a remote API client
func NewClient(cfg config.RemoteAPIConfig, logger *logger.Logger) *Client {
	actorHeader := cfg.ActorHeader
	if actorHeader == "" {
		actorHeader = "X-Actor"
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		actorHeader: actorHeader,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends a JSON request and decodes the response payload into out (which may be nil)
func (c *Client) do(ctx context.Context, sess session.Session, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		reader = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req, sess)

	return c.send(req, out)
}

// doMultipart uploads a single file field
func (c *Client) doMultipart(ctx context.Context, sess session.Session, path, field, filename string, content []byte, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("failed to write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(req, sess)

	return c.send(req, out)
}

// authorize forwards the caller's token and, on mutating requests, the actor header
func (c *Client) authorize(req *http.Request, sess session.Session) {
	req.Header.Set("X-Request-Id", uuid.New().String())
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	if isMutating(req.Method) && sess.Actor != "" {
		req.Header.Set(c.actorHeader, sess.Actor)
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func (c *Client) send(req *http.Request, out interface{}) error {
	op := req.Method + " " + req.URL.Path

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("request", op).Error("Remote API unreachable")
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WithError(err).WithField("request", op).Error("Failed to read remote API response")
		return &NetworkError{Op: op, Err: err}
	}

	c.logger.WithFields(map[string]interface{}{
		"request":     op,
		"request_id":  req.Header.Get("X-Request-Id"),
		"status_code": resp.StatusCode,
	}).Debug("Remote API response")

	return decode(resp.StatusCode, body, out)
}

func decode(status int, body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)

	var raw map[string]json.RawMessage
	isObject := len(trimmed) > 0 && trimmed[0] == '{' && json.Unmarshal(trimmed, &raw) == nil

	var env envelope
	if isObject {
		_ = json.Unmarshal(trimmed, &env)
	}

	if status >= http.StatusBadRequest || (env.Success != nil && !*env.Success) {
		apiErr := &APIError{Status: status, Message: env.Message}
		if apiErr.Message == "" {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	if out == nil || len(trimmed) == 0 {
		return nil
	}

	payload := trimmed
	if data, ok := raw["data"]; ok {
		if string(bytes.TrimSpace(data)) == "null" {
			return nil
		}
		payload = data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
