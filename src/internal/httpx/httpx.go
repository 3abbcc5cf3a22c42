package httpx

import (
	"net/http"
	"time"
)

// Doer is the minimal HTTP client interface used across packages.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UA identifies this tool on all outbound HTTP. Scholarly APIs ask for a
// descriptive User-Agent rather than a browser string.
const UA = "citations/1.0 (+https://github.com/sam-caldwell/citations)"

// SetUA sets the UA header on the request.
func SetUA(req *http.Request) {
	if req != nil {
		req.Header.Set("User-Agent", UA)
	}
}

// NewClient returns an HTTP client with the given timeout, falling back to
// 10s when the timeout is zero or negative.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
