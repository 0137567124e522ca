package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rjawad/voiceproof-cli/internal/client/models"
	"github.com/rjawad/voiceproof-cli/internal/client/session"
	"github.com/rjawad/voiceproof-cli/internal/logging"
)

// HTTPClient talks to the VoiceProof backend over HTTP/JSON. Protected calls
// go through Request, which verifies the local session before dispatch,
// attaches the bearer token, and treats a 401 as a server-confirmed session
// invalidation.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session *session.Manager
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, sess *session.Manager, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

// RequestOptions carries the caller-controlled parts of a protected request.
type RequestOptions struct {
	Body io.Reader

	// ContentType overrides the default application/json applied to
	// requests with a body. Multipart uploads pass the writer's boundary
	// type here.
	ContentType string

	// Header entries are merged into the request. Authorization cannot be
	// overridden through it.
	Header http.Header
}

// Request performs an authenticated call against endpoint. It aborts locally
// with ErrAuthRequired when no valid session exists, without touching the
// network. The caller owns the response body on success.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, opts RequestOptions) (*http.Response, error) {
	token, ok := c.session.Token(ctx)
	if !ok {
		return nil, ErrAuthRequired
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	} else if opts.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	// set after the merge so caller-supplied headers cannot clobber them
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The server is authoritative about token validity. Drop the local
		// session even if the clock still considers it alive.
		drain(resp)
		c.session.Logout(ctx)
		c.log.Warn(ctx, "server rejected token, session cleared", "endpoint", endpoint)
		return nil, ErrReloginRequired
	}

	return resp, nil
}

// doJSON runs Request and decodes a 2xx JSON body into out. Non-2xx bodies
// become *APIError.
func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, opts RequestOptions, out any) error {
	resp, err := c.Request(ctx, method, endpoint, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFrom(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// postJSON sends a tokenless JSON POST, used by the auth endpoints where no
// session exists yet. A 401 here is an ordinary rejection (bad credentials),
// not a session invalidation.
func (c *HTTPClient) postJSON(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFrom(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func apiErrorFrom(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var remote struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &remote)

	return &APIError{StatusCode: resp.StatusCode, Detail: remote.Detail}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthGrant, error) {
	var grant models.AuthGrant
	err := c.postJSON(ctx, "/auth/login", models.LoginRequest{Username: username, Password: password}, &grant)
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthGrant, error) {
	var grant models.AuthGrant
	if err := c.postJSON(ctx, "/auth/register", req, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// Predict uploads an audio file as multipart form data. The multipart writer
// supplies its own content type with the boundary, overriding the JSON
// default.
func (c *HTTPClient) Predict(ctx context.Context, filename string, audio io.Reader) (*models.PredictionResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	var result models.PredictionResult
	opts := RequestOptions{Body: &buf, ContentType: w.FormDataContentType()}
	if err := c.doJSON(ctx, http.MethodPost, "/predict", opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var page models.HistoryPage
	if err := c.doJSON(ctx, http.MethodGet, "/history", RequestOptions{}, &page); err != nil {
		return nil, err
	}
	return page.History, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := c.doJSON(ctx, http.MethodGet, "/stats", RequestOptions{}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
