package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client implements IDeepSeek interface
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a new DeepSeek client
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  cfg.HTTPClient,
	}
}

// GenerateContent performs a single chat-completion call. It never retries;
// callers wrap it in a retry policy. All failures are typed *Error values.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "API key is not configured"}
	}

	if req.Model == "" {
		req.Model = c.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// Request sent, no response: network failure or the 60s timeout.
		return nil, &Error{Kind: KindUnreachable, Message: "chat service is unreachable", cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Message: "failed to read chat service response", cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.classifyStatus(resp.StatusCode, respBody)
	}

	return c.validateResponse(respBody)
}

// classifyStatus maps a non-2xx status to the error taxonomy, keeping the
// provider's own message as the wrapped cause.
func (c *Client) classifyStatus(status int, body []byte) *Error {
	detail := string(body)
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		detail = errResp.Error.Message
	}
	cause := fmt.Errorf("API error %d: %s", status, detail)

	switch status {
	case http.StatusUnauthorized:
		return &Error{Kind: KindAuthentication, Status: status, Message: "chat service rejected the credential", cause: cause}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimit, Status: status, Message: "chat service is throttling requests", cause: cause}
	default:
		return &Error{Kind: KindUpstreamHTTP, Status: status, Message: fmt.Sprintf("chat service returned status %d", status), cause: cause}
	}
}

// validateResponse enforces the expected response shape on a 2xx body.
// Each malformation is a distinct protocol error so logs point at the
// exact contract violation.
func (c *Client) validateResponse(body []byte) (*Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &Error{Kind: KindProtocol, Message: "empty response body"}
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{Kind: KindProtocol, Message: "response body is not valid JSON", cause: err}
	}
	if len(result.Choices) == 0 {
		return nil, &Error{Kind: KindProtocol, Message: "response contained no choices"}
	}
	if result.Choices[0].Message.Content == "" {
		return nil, &Error{Kind: KindProtocol, Message: "first choice has no message content"}
	}

	return &result, nil
}
