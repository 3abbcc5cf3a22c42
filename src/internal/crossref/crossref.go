package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"citations/src/internal/httpx"
	"citations/src/internal/sanitize"
	"citations/src/internal/schema"
)

const endpoint = "https://api.crossref.org/works"

// ErrNoResults indicates the query succeeded but matched nothing.
var ErrNoResults = errors.New("no results")

// ErrEmptyQuery indicates a blank query, rejected before any network call.
var ErrEmptyQuery = errors.New("empty query")

var (
	client  httpx.Doer = httpx.NewClient(10 * time.Second)
	limiter            = rate.NewLimiter(rate.Limit(5), 1)
	mailto  string
)

// SetHTTPClient allows tests to inject a fake HTTP client.
func SetHTTPClient(c httpx.Doer) { client = c }

// SetRateLimit caps outbound requests per second.
func SetRateLimit(perSec float64) {
	if perSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
}

// SetMailto sets the contact address sent with every query. Crossref routes
// requests that carry a mailto parameter into its polite pool.
func SetMailto(addr string) { mailto = strings.TrimSpace(addr) }

// Search queries the Crossref works API and maps each item to a citation.
func Search(ctx context.Context, query string, limit int) ([]schema.Citation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("crossref: %w", ErrEmptyQuery)
	}
	if limit <= 0 {
		limit = 5
	}
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("query", query)
	v.Set("rows", strconv.Itoa(limit))
	if mailto != "" {
		v.Set("mailto", mailto)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	httpx.SetUA(req)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("crossref: http %d: %s", resp.StatusCode, string(b))
	}
	var out struct {
		Message struct {
			Items []Work `json:"items"`
		} `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Message.Items) == 0 {
		return nil, fmt.Errorf("crossref: %w", ErrNoResults)
	}
	cs := make([]schema.Citation, 0, len(out.Message.Items))
	for _, w := range out.Message.Items {
		c := FromWork(w)
		sanitize.CleanCitation(&c)
		cs = append(cs, c)
	}
	return cs, nil
}
