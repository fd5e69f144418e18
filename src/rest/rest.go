package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultBaseURL = "https://api.teamly.one/api/v1"

type Client struct {
	httpBaseURL string
	httpClient  *http.Client
	botToken    string
	log         *slog.Logger
}

type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type RESTOptions struct {
	Headers map[string]string
	Query   url.Values
	// ContentType replaces the default JSON content type, for multipart
	// bodies.
	ContentType string
}

func New(cfg Config) *Client {
	c := &Client{
		httpBaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  cfg.HTTPClient,
		botToken:    cfg.Token,
		log:         cfg.Logger,
	}
	if c.httpBaseURL == "" {
		c.httpBaseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

func (c *Client) URL() string {
	return c.httpBaseURL
}

func (c *Client) applyHeaders(req *http.Request, headers map[string]string) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}

func (c *Client) makeRequest(ctx context.Context, method string, path string, body io.Reader, options *RESTOptions) (*http.Request, error) {
	u := c.httpBaseURL + path
	if options != nil && len(options.Query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		u += sep + options.Query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	// Mandatory headers.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bot %s", c.botToken))

	if options != nil {
		if options.ContentType != "" {
			req.Header.Set("Content-Type", options.ContentType)
		}
		c.applyHeaders(req, options.Headers)
	}
	return req, nil
}

// Do sends a request to path, relative to the base URL. The returned
// error covers transport failures only; inspect Response.Err for HTTP
// failures.
func (c *Client) Do(ctx context.Context, method string, path string, body io.Reader, options *RESTOptions) (*Response, error) {
	req, err := c.makeRequest(ctx, method, path, body, options)
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("rest: %s %s: read body: %w", method, path, err)
	}
	c.log.Debug("rest request", "method", method, "path", path, "status", res.StatusCode)
	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       b,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, options *RESTOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, options)
}

func (c *Client) Put(ctx context.Context, path string, body io.Reader, options *RESTOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body, options)
}

func (c *Client) Patch(ctx context.Context, path string, body io.Reader, options *RESTOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body, options)
}

func (c *Client) Delete(ctx context.Context, path string, options *RESTOptions) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, options)
}

func (c *Client) Post(ctx context.Context, path string, body io.Reader, options *RESTOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, options)
}

// JSONBody encodes v as a request body.
func JSONBody(v any) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rest: encode body: %w", err)
	}
	return bytes.NewReader(b), nil
}
