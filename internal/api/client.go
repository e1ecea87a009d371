package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

// SendError is the backend's business rejection of a send request, carried in
// the response body rather than the status line.
type SendError struct {
	Reason string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send rejected: %s", e.Reason)
}

// Client wraps the webmail backend's HTTP interface and provides one method
// per endpoint. Authentication rides on the session cookie held in the jar;
// no token is managed here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. The cookie jar plays
// the role the browser's credential store played for the original web client.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("could not create cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// LoginURL returns the backend login endpoint. Login itself is a browser
// redirect flow owned by the backend; the client only surfaces the address.
func (c *Client) LoginURL() string { return c.baseURL + "/login" }

// CheckSession asks the backend whether the current cookies hold valid
// credentials.
func (c *Client) CheckSession(ctx context.Context) (bool, error) {
	var resp sessionResponse
	if err := c.getJSON(ctx, "/session", &resp); err != nil {
		return false, fmt.Errorf("session check failed: %w", err)
	}
	return resp.Credentials, nil
}

// FetchInbox retrieves the full inbox summary list in backend order.
func (c *Client) FetchInbox(ctx context.Context) ([]MessageSummary, error) {
	var summaries []MessageSummary
	if err := c.getJSON(ctx, "/inbox", &summaries); err != nil {
		return nil, fmt.Errorf("could not fetch inbox: %w", err)
	}
	return summaries, nil
}

// FetchMessage retrieves the full content of a single message.
func (c *Client) FetchMessage(ctx context.Context, id string) (*MessageDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("message ID cannot be empty")
	}
	var detail MessageDetail
	if err := c.getJSON(ctx, "/email/"+url.PathEscape(id), &detail); err != nil {
		return nil, fmt.Errorf("could not fetch message %s: %w", id, err)
	}
	if detail.ID == "" {
		detail.ID = id
	}
	return &detail, nil
}

// Star marks a message starred. The response body is ignored by contract;
// only transport success matters to the caller.
func (c *Client) Star(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	if err := c.getJSON(ctx, "/star/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("could not star message %s: %w", id, err)
	}
	return nil
}

// MarkSpam classifies a message as spam and returns the backend's
// confirmation text.
func (c *Client) MarkSpam(ctx context.Context, id string) (string, error) {
	return c.spamCall(ctx, "/spam/", id)
}

// UnmarkSpam removes the spam classification and returns the backend's
// confirmation text.
func (c *Client) UnmarkSpam(ctx context.Context, id string) (string, error) {
	return c.spamCall(ctx, "/unspam/", id)
}

func (c *Client) spamCall(ctx context.Context, prefix, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("message ID cannot be empty")
	}
	var resp confirmResponse
	if err := c.getJSON(ctx, prefix+url.PathEscape(id), &resp); err != nil {
		return "", fmt.Errorf("could not update spam state of %s: %w", id, err)
	}
	return resp.Message, nil
}

// Send submits a message. A well-formed response carrying an error field is
// returned as *SendError so callers can distinguish the backend's rejection
// from transport failure.
func (c *Client) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(sendRequest{Recipient: recipient, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("could not encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// The backend reports rejection through the body's error field, with
	// varying status codes; decode the body before looking at the status.
	var resp sendResponse
	if decodeErr := json.NewDecoder(httpResp.Body).Decode(&resp); decodeErr != nil && decodeErr != io.EOF {
		return fmt.Errorf("could not decode send response: %w", decodeErr)
	}
	if resp.Error != "" {
		return &SendError{Reason: resp.Error}
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return &StatusError{StatusCode: httpResp.StatusCode, Endpoint: "/send"}
	}
	return nil
}

// Logout ends the backend session. Callers treat this as fire-and-forget.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.getJSON(ctx, "/logout", nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// getJSON issues a GET and decodes the JSON body into out when non-nil.
// Non-2xx statuses become *StatusError without attempting a decode.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("could not build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Endpoint: path}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response from %s: %w", path, err)
	}
	return nil
}
