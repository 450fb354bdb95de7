package draftapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/drafty/internal/infrastructure/staging"
	"github.com/riskibarqy/drafty/internal/platform/logging"
	"github.com/riskibarqy/drafty/internal/usecase"
)

const (
	defaultBaseURL   = "https://draft.premierleague.com/api"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "drafty/1.0"
	defaultMaxBody   = 32 << 20
)

// Sink persists fetched bodies under a staging-relative name.
type Sink interface {
	Write(rel string, body []byte) error
}

// Item pairs a staging file with the endpoint path that fills it.
type Item struct {
	File string
	Path string
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	// MaxBodyBytes caps a response body. Larger bodies fail the fetch.
	MaxBodyBytes int64
	Logger       *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBody    int64
	sink       Sink
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig, sink Sink) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxBody:    maxBody,
		sink:       sink,
		logger:     logger,
	}
}

func StaticItems() []Item {
	return []Item{
		{File: staging.FileBootstrapDynamic, Path: "bootstrap-dynamic"},
		{File: staging.FileGame, Path: "game"},
		{File: staging.FileBootstrapStatic, Path: "bootstrap-static"},
		{File: staging.FileEventStatus, Path: "pl/event-status"},
	}
}

func LeagueItems(leagueCode string) []Item {
	return []Item{
		{File: staging.FileDetails, Path: fmt.Sprintf("league/%s/details", leagueCode)},
		{File: staging.FileElementStatus, Path: fmt.Sprintf("league/%s/element-status", leagueCode)},
		{File: staging.FileTransactions, Path: fmt.Sprintf("draft/league/%s/transactions", leagueCode)},
		{File: staging.FileChoices, Path: fmt.Sprintf("draft/%s/choices", leagueCode)},
	}
}

func EntryItems(entryID int64) []Item {
	return []Item{
		{File: staging.EntryPublic(entryID), Path: fmt.Sprintf("entry/%d/public", entryID)},
		{File: staging.EntryHistory(entryID), Path: fmt.Sprintf("entry/%d/history", entryID)},
	}
}

func EntryEventItems(entryID int64, gw int) []Item {
	return []Item{
		{File: staging.EntryEvent(entryID, gw), Path: fmt.Sprintf("entry/%d/event/%d", entryID, gw)},
	}
}

func LiveItems(gw int) []Item {
	return []Item{
		{File: staging.Live(gw), Path: fmt.Sprintf("event/%d/live", gw)},
	}
}

func (c *Client) FetchStatic(ctx context.Context) error {
	return c.Fetch(ctx, StaticItems())
}

func (c *Client) FetchLeague(ctx context.Context, leagueCode string) error {
	leagueCode = strings.TrimSpace(leagueCode)
	if leagueCode == "" {
		return crerr.Mark(crerr.New("league code is required"), usecase.ErrConfig)
	}
	return c.Fetch(ctx, LeagueItems(leagueCode))
}

func (c *Client) FetchEntry(ctx context.Context, entryID int64) error {
	return c.Fetch(ctx, EntryItems(entryID))
}

func (c *Client) FetchEntryEvent(ctx context.Context, entryID int64, gw int) error {
	return c.Fetch(ctx, EntryEventItems(entryID, gw))
}

func (c *Client) FetchLive(ctx context.Context, gw int) error {
	return c.Fetch(ctx, LiveItems(gw))
}

// Fetch stages every item in order and stops at the first failure. Files
// written before the failure stay on disk.
func (c *Client) Fetch(ctx context.Context, items []Item) error {
	for _, item := range items {
		fullURL := c.baseURL + "/" + strings.TrimLeft(item.Path, "/")
		c.logger.InfoContext(ctx, "fetching", "url", fullURL, "file", item.File)

		raw, err := c.executeRequest(ctx, fullURL)
		if err != nil {
			return crerr.Mark(crerr.Wrapf(err, "fetch %s", item.Path), usecase.ErrFetch)
		}
		if err := c.sink.Write(item.File, raw); err != nil {
			return crerr.Mark(crerr.Wrapf(err, "stage %s", item.File), usecase.ErrFetch)
		}
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "draft api request failed", "url", fullURL, "error", err)
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(raw)) > c.maxBody {
		err := fmt.Errorf("response body exceeds %d bytes", c.maxBody)
		c.logger.WarnContext(ctx, "draft api request failed", "url", fullURL, "error", err)
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		c.logger.WarnContext(ctx, "draft api request failed", "url", fullURL, "error", err)
		return nil, err
	}
	return raw, nil
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
