// Package webhook executes Teamly webhooks. Webhook calls authenticate
// with the token in the URL, so no bot token is needed.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DeadLyBro/teamly/src/rest"
	"github.com/DeadLyBro/teamly/src/structs"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 10 * time.Second

type Client struct {
	httpBaseURL string
	httpClient  *fasthttp.Client
	timeout     time.Duration
	strict      bool
	log         *slog.Logger
}

type Config struct {
	BaseURL    string
	HTTPClient *fasthttp.Client
	// Timeout bounds a call when the context has no deadline.
	Timeout time.Duration
	Strict  bool
	Logger  *slog.Logger
}

func New(cfg Config) *Client {
	c := &Client{
		httpBaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  cfg.HTTPClient,
		timeout:     cfg.Timeout,
		strict:      cfg.Strict,
		log:         cfg.Logger,
	}
	if c.httpBaseURL == "" {
		c.httpBaseURL = rest.DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &fasthttp.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Send posts a message through the webhook and returns the created
// message. Masked failures return an empty message, never nil.
func (c *Client) Send(ctx context.Context, webhookID, webhookToken string, msg structs.WebhookMessage) (*structs.Message, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return &structs.Message{}, c.fail(webhookID, fmt.Errorf("webhook: encode: %w", err))
	}
	body, err := c.post(ctx, fmt.Sprintf("/webhooks/%s/%s", webhookID, webhookToken), data)
	if err != nil || len(body) == 0 {
		return &structs.Message{}, c.fail(webhookID, err)
	}
	var res struct {
		Message *structs.Message `json:"message"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return &structs.Message{}, c.fail(webhookID, fmt.Errorf("webhook: decode: %w", err))
	}
	if res.Message == nil {
		return &structs.Message{}, nil
	}
	return res.Message, nil
}

// Github triggers the GitHub-compatible endpoint of a webhook.
func (c *Client) Github(ctx context.Context, webhookID, webhookToken string) (structs.Payload, error) {
	body, err := c.post(ctx, fmt.Sprintf("/webhooks/%s/%s/github", webhookID, webhookToken), nil)
	if err != nil || len(body) == 0 {
		return structs.Payload{}, c.fail(webhookID, err)
	}
	p := structs.Payload{}
	if err := json.Unmarshal(body, &p); err != nil {
		return structs.Payload{}, c.fail(webhookID, fmt.Errorf("webhook: decode: %w", err))
	}
	return p, nil
}

func (c *Client) post(ctx context.Context, path string, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI(c.httpBaseURL + path)
	req.Header.SetContentType("application/json")
	if data != nil {
		req.SetBody(data)
	}
	if err := c.httpClient.DoDeadline(req, res, deadline); err != nil {
		return nil, fmt.Errorf("webhook: POST %s: %w", path, err)
	}

	status := res.StatusCode()
	body := append([]byte(nil), res.Body()...)
	c.log.Debug("webhook request", "path", path, "status", status)
	if status < 200 || status >= 300 {
		return nil, &rest.APIError{StatusCode: status, Body: string(body)}
	}
	return body, nil
}

// fail logs err and returns it only in strict mode. A nil err means an
// empty answer, which is not a failure.
func (c *Client) fail(webhookID string, err error) error {
	if err == nil {
		return nil
	}
	c.log.Error("webhook error", "webhook", webhookID, "error", err)
	if c.strict {
		return err
	}
	return nil
}
