package usps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/usps-zip4/internal/debug"
)

// Client issues ZipCodeLookup requests against one Web Tools endpoint
type Client struct {
	config     Config
	httpClient *http.Client
}

// New validates cfg and returns a client. It fails with KindConfig when no
// USERID is configured.
func New(cfg Config) (*Client, error) {
	cfg.UserID = strings.TrimSpace(cfg.UserID)
	cfg.Password = strings.TrimSpace(cfg.Password)
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)

	if cfg.UserID == "" {
		return nil, newError(KindConfig, "Missing USPS_WEBTOOLS_USERID environment variable")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.DebugWriter == nil {
		cfg.DebugWriter = os.Stderr
	}

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Lookup is a convenience for New followed by Client.Lookup
func Lookup(ctx context.Context, cfg Config, addr Address) (*Result, error) {
	client, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return client.Lookup(ctx, addr)
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Lookup performs one ZipCodeLookup call for addr
func (c *Client) Lookup(ctx context.Context, addr Address) (*Result, error) {
	defer debug.Timing(c.config.DebugWriter, c.config.Debug, "ZipCodeLookup")()

	requestXML, err := BuildRequest(c.config.UserID, c.config.Password, addr)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Message: err.Error(), Err: err}
	}

	body, status, err := c.fetch(ctx, RequestURL(c.config.Endpoint, requestXML))
	if err != nil {
		return nil, err
	}

	debug.Block(c.config.DebugWriter, c.config.Debug, "USPS RAW RESPONSE", body)

	if status < 200 || status > 299 {
		return nil, newError(KindTransport, "USPS returned HTTP %d", status)
	}

	resp := ParseResponse(body)
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Result, nil
}

// fetch GETs rawURL and returns the body as valid UTF-8 with the status code
func (c *Client) fetch(ctx context.Context, rawURL string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to build request: %v", err), Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, &Error{Kind: KindTransport, Message: fmt.Sprintf("USPS request failed: %v", err), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to read USPS response: %v", err), Err: err}
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), resp.StatusCode, nil
}
