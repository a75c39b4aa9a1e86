// Package process talks to the image processing service.
package process

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/juruen/sketchpad/log"
)

const (
	DefaultEndpoint = "/process_image"

	// message used when an error response carries no usable "error" field
	genericServerError = "Server error"

	tokenLifetime = time.Minute
)

var (
	ErrNoMatrix  = errors.New("No matrix data received")
	ErrBadMatrix = errors.New("Invalid matrix dimensions")
)

// ServerError is a non-2xx answer from the service.
// Error returns the service message verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Processor processes one encoded canvas
type Processor interface {
	Process(ctx context.Context, image string) (*Response, error)
}

// Client is the HTTP client of the processing service
type Client struct {
	url      *url.URL
	endpoint string
	client   *http.Client
	secret   []byte
	timeout  time.Duration
}

var _ Processor = (*Client)(nil)

type Option func(*Client)

// WithEndpoint overrides the request path
func WithEndpoint(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.endpoint = path
		}
	}
}

// WithSecret signs every request with a short lived HS256 bearer token
func WithSecret(secret string) Option {
	return func(c *Client) {
		if secret != "" {
			c.secret = []byte(secret)
		}
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient returns a client for the service at baseURL.
// A nil client means http.DefaultClient.
func NewClient(baseURL string, client *http.Client, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid url")
	}
	if client == nil {
		client = http.DefaultClient
	}

	c := &Client{url: u, endpoint: DefaultEndpoint, client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Process sends the data URL and returns the decoded answer
func (c *Client) Process(ctx context.Context, image string) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(Request{Image: image})
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	requestID := uuid.New().String()
	target := c.url.JoinPath(c.endpoint).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.secret != nil {
		token, err := c.token(requestID)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Trace.Printf("process: %s POST %s (%d bytes)", requestID, target, len(body))
	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer res.Body.Close()

	content, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	log.Trace.Printf("process: %s status %d (%d bytes)", requestID, res.StatusCode, len(content))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, serverError(res.StatusCode, content)
	}

	var resp Response
	if err := json.Unmarshal(content, &resp); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if err := resp.Matrix.Validate(); err != nil {
		return nil, err
	}
	return &resp, nil
}

func serverError(status int, content []byte) *ServerError {
	var body errorBody
	if err := json.Unmarshal(content, &body); err != nil || body.Error == "" {
		return &ServerError{StatusCode: status, Message: genericServerError}
	}
	return &ServerError{StatusCode: status, Message: body.Error}
}

func (c *Client) token(id string) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Id:        id,
		Subject:   "sketchpad",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenLifetime).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}
