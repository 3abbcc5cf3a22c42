package searchcmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"citations/src/internal/config"
	"citations/src/internal/crossref"
	"citations/src/internal/googlebooks"
	"citations/src/internal/openlibrary"
)

type fakeDoer struct {
	handler func(req *http.Request) *http.Response
}

func (f fakeDoer) Do(req *http.Request) (*http.Response, error) { return f.handler(req), nil }

func jsonResp(code int, v any) *http.Response {
	b, _ := json.Marshal(v)
	return &http.Response{StatusCode: code, Body: io.NopCloser(bytes.NewReader(b)), Header: http.Header{"Content-Type": {"application/json"}}}
}

func textResp(code int, s string) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(strings.NewReader(s)), Header: http.Header{"Content-Type": {"text/plain"}}}
}

func fastLimits() {
	crossref.SetRateLimit(1000)
	googlebooks.SetRateLimit(1000)
	openlibrary.SetRateLimit(1000)
}

func openLibraryHit() fakeDoer {
	return fakeDoer{handler: func(req *http.Request) *http.Response {
		return jsonResp(200, map[string]any{"docs": []map[string]any{{
			"title":              "Dune",
			"author_name":        []string{"Frank Herbert"},
			"first_publish_year": 1965,
			"publisher":          []string{"Chilton Books"},
			"key":                "/works/OL893415W",
		}}})
	}}
}

func TestSearchSingleSource(t *testing.T) {
	fastLimits()
	openlibrary.SetHTTPClient(openLibraryHit())

	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"dune", "--source", "openlibrary", "--style", "apa"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Herbert, Frank (1965). <i>Dune</i>. Chilton Books. https://openlibrary.org/works/OL893415W"
	if !strings.Contains(out.String(), want) {
		t.Errorf("output = %q; want substring %q", out.String(), want)
	}
}

func TestSearchYAMLOutput(t *testing.T) {
	fastLimits()
	openlibrary.SetHTTPClient(openLibraryHit())

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"dune", "--source", "openlibrary", "--yaml"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"title: Dune", "source: openlibrary", "- Frank Herbert"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("yaml output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSearchTableOutput(t *testing.T) {
	fastLimits()
	openlibrary.SetHTTPClient(openLibraryHit())

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"dune", "--source", "openlibrary", "--table"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"TITLE", "Dune", "1965"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSearchAllWarnsOnPartialFailure(t *testing.T) {
	fastLimits()
	crossref.SetHTTPClient(fakeDoer{handler: func(req *http.Request) *http.Response {
		return textResp(503, "unavailable")
	}})
	googlebooks.SetHTTPClient(fakeDoer{handler: func(req *http.Request) *http.Response {
		return textResp(500, "down")
	}})
	openlibrary.SetHTTPClient(openLibraryHit())

	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"dune"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Herbert, Frank") {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warning: crossref") || !strings.Contains(errOut.String(), "warning: googlebooks") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestSearchLimitFromConfig(t *testing.T) {
	t.Setenv("CITE_MAX_RESULTS", "9")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Apply()
	defer config.Default().Apply()
	fastLimits()
	var gotURL string
	openlibrary.SetHTTPClient(fakeDoer{handler: func(req *http.Request) *http.Response {
		gotURL = req.URL.String()
		return jsonResp(200, map[string]any{"docs": []map[string]any{{"title": "Dune"}}})
	}})

	cmd := New()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"dune", "--source", "openlibrary"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(gotURL, "limit=9") {
		t.Errorf("url = %q; want configured limit=9", gotURL)
	}
}

func TestSearchLimitFlagWins(t *testing.T) {
	fastLimits()
	var gotURL string
	openlibrary.SetHTTPClient(fakeDoer{handler: func(req *http.Request) *http.Response {
		gotURL = req.URL.String()
		return jsonResp(200, map[string]any{"docs": []map[string]any{{"title": "Dune"}}})
	}})

	cmd := New()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"dune", "--source", "openlibrary", "--limit", "2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(gotURL, "limit=2") {
		t.Errorf("url = %q; want limit=2 from the flag", gotURL)
	}
}

func TestSearchUnknownSource(t *testing.T) {
	cmd := New()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"dune", "--source", "worldcat"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
