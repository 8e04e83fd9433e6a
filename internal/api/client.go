package api

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// DefaultUserAgent is a desktop browser string; blockchain.info rejects some
// default library agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ClientConfig holds everything needed to build a Client.
type ClientConfig struct {
	Flavor         Flavor
	BlockURL       string // base, the identifier is appended as a path segment
	TransactionURL string
	Timeout        time.Duration // 0 leaves the transport default
	Headers        map[string]string
	Logger         *logrus.Logger
}

// Client issues one GET per call. There is no retry and no caching.
type Client struct {
	flavor   Flavor
	blockURL string
	txURL    string
	http     *resty.Client
	log      *logrus.Entry
}

// Response carries a decoded record with the raw body it came from.
// Raw is populated even when the decode fails.
type Response[T any] struct {
	URL     string
	Record  *T
	Raw     []byte
	Latency time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	entry := logger.WithField("api", string(cfg.Flavor))

	httpClient := resty.New().
		SetLogger(entry).
		SetRetryCount(0).
		SetHeaders(cfg.Headers)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		flavor:   cfg.Flavor,
		blockURL: cfg.BlockURL,
		txURL:    cfg.TransactionURL,
		http:     httpClient,
		log:      entry,
	}
}

func (c *Client) Flavor() Flavor { return c.flavor }

// Block fetches an explorer block by height, block index or hash.
func (c *Client) Block(ctx context.Context, id string) (*Response[Block], error) {
	return fetch[Block](ctx, c, c.blockURL, id, "block")
}

// Transaction fetches an explorer transaction by hash or tx index.
func (c *Client) Transaction(ctx context.Context, id string) (*Response[Transaction], error) {
	return fetch[Transaction](ctx, c, c.txURL, id, "transaction")
}

// SimpleBlock fetches a simple-flavor block.
func (c *Client) SimpleBlock(ctx context.Context, id string) (*Response[SimpleBlock], error) {
	return fetch[SimpleBlock](ctx, c, c.blockURL, id, "block")
}

// SimpleTransaction fetches a simple-flavor transaction.
func (c *Client) SimpleTransaction(ctx context.Context, id string) (*Response[SimpleTransaction], error) {
	return fetch[SimpleTransaction](ctx, c, c.txURL, id, "transaction")
}

func fetch[T any](ctx context.Context, c *Client, base, id, record string) (*Response[T], error) {
	url, err := BuildURL(base, id)
	if err != nil {
		return nil, err
	}

	body, latency, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	resp := &Response[T]{URL: url, Raw: body, Latency: latency}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		c.log.WithField("url", url).Debugf("decode %s failed: %v", record, err)
		return resp, &DecodeError{Record: record, Err: err}
	}
	if c.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		c.log.Debugf("decoded %s:\n%s", record, spew.Sdump(out))
	}

	resp.Record = &out
	return resp, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, time.Duration, error) {
	log := c.log.WithField("url", url)
	log.Debug("GET")

	start := time.Now()
	httpResp, err := c.http.R().SetContext(ctx).Get(url)
	latency := time.Since(start)
	if err != nil {
		return nil, latency, &TransportError{URL: url, Err: err}
	}

	log.WithFields(logrus.Fields{
		"status":  httpResp.StatusCode(),
		"latency": latency.Round(time.Millisecond),
		"bytes":   len(httpResp.Body()),
	}).Debug("response")

	if !httpResp.IsSuccess() {
		return nil, latency, &StatusError{URL: url, Code: httpResp.StatusCode(), Status: httpResp.Status()}
	}

	return httpResp.Body(), latency, nil
}
