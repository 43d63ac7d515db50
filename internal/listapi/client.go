package listapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the remote store operations the core consumes.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPage(ctx context.Context, query PageQuery) (Page, error)
	FetchByIDs(ctx context.Context, ids []int64) ([]Item, error)
	FetchState(ctx context.Context) (StateRecord, error)
	SaveState(ctx context.Context, record StateRecord) error
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrNoState reports that the service holds no persisted record for
// this session. Callers substitute defaults; it is not a failure.
var ErrNoState = errors.New("no saved state")

// Client talks to the item service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	session   string
}

const (
	defaultAPIBind   = "127.0.0.1:7607"
	defaultUserAgent = "shortlist/0.1"
	requestTimeout   = 5 * time.Second

	// SessionHeader carries the session id so the service can keep one
	// state record per session.
	SessionHeader = "X-Session"
)

// PageQuery configures GET /items requests.
type PageQuery struct {
	Search    string
	Offset    int
	Limit     int
	UseSorted bool
}

// NewClient builds a Client using the provided apiBind host:port value.
// The session id may be empty; the service then serves its shared
// default record.
func NewClient(apiBind, session string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		session:   session,
	}, nil
}

// FetchPage retrieves one page of items for the query.
func (c *Client) FetchPage(ctx context.Context, query PageQuery) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	// The term goes over the wire verbatim. Matching is an exact
	// substring test server side, so trimming here would silently turn a
	// whitespace search into an unfiltered listing.
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	values.Set("offset", strconv.Itoa(query.Offset))
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.UseSorted {
		values.Set("useSorted", "true")
	}
	rel := &url.URL{Path: "/items", RawQuery: values.Encode()}
	var payload Page
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return Page{}, err
	}
	return payload, nil
}

// FetchByIDs retrieves specific items by id, used to hydrate a saved
// ordering without a full page scan.
func (c *Client) FetchByIDs(ctx context.Context, ids []int64) ([]Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var payload BulkResponse
	rel := &url.URL{Path: "/items/bulk"}
	if err := c.doURL(ctx, http.MethodPost, rel, BulkRequest{IDs: ids}, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// FetchState retrieves the persisted UI state record for this session.
// Returns ErrNoState when the service has nothing saved.
func (c *Client) FetchState(ctx context.Context) (StateRecord, error) {
	if c == nil {
		return StateRecord{}, fmt.Errorf("client is nil")
	}
	var payload StateRecord
	rel := &url.URL{Path: "/get-state"}
	err := c.doURL(ctx, http.MethodGet, rel, nil, &payload)
	if err != nil {
		var status statusError
		if errors.As(err, &status) && status.code == http.StatusNotFound {
			return StateRecord{}, ErrNoState
		}
		return StateRecord{}, err
	}
	return payload, nil
}

// SaveState persists the UI state record. The response body carries no
// information the client needs.
func (c *Client) SaveState(ctx context.Context, record StateRecord) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/save-state"}
	return c.doURL(ctx, http.MethodPost, rel, record, nil)
}

// statusError preserves the HTTP status so callers can distinguish
// "no record" from genuine failures.
type statusError struct {
	path string
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.path, e.code)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.Header.Set(SessionHeader, c.session)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return statusError{path: rel.Path, code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
