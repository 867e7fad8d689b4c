package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Fallback looks up a performer description on DBpedia when the local
// performer graph has no match.
type Fallback struct {
	baseURL    string
	httpClient *http.Client
}

// NewFallback creates a fallback client. baseURL is the DBpedia data root,
// e.g. "https://dbpedia.org/data".
func NewFallback(baseURL string, timeout time.Duration) *Fallback {
	return &Fallback{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Describe returns a best-effort description for the name. Every failure
// mode (timeout, network error, non-200 status) yields ("", false); this
// path must never abort a session.
func (f *Fallback) Describe(ctx context.Context, name string) (string, bool) {
	resource := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if resource == "" {
		return "", false
	}
	url := fmt.Sprintf("%s/%s.json", f.baseURL, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	return fmt.Sprintf("Fallback info from DBpedia: %s", url), true
}
