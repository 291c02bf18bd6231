package streamtape

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/AuraHubTeam/AuraHub/internal/errs"
)

const (
	testLogin = "test-login"
	testKey   = "test-key-secret"
)

func newTestClient(baseURL string) *Client {
	return NewClient(conf.Upstream{
		BaseURL:        baseURL,
		Login:          testLogin,
		Key:            testKey,
		TimeoutSeconds: 5,
	})
}

// upstreamStub records every request and answers with a fixed envelope.
type upstreamStub struct {
	requests []*url.URL
	status   int
	result   string
}

func (s *upstreamStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := *r.URL
		s.requests = append(s.requests, &u)
		fmt.Fprintf(w, `{"status":%d,"msg":"OK","result":%s}`, s.status, s.result)
	}
}

func TestCallAttachesCredentials(t *testing.T) {
	stub := &upstreamStub{status: 200, result: `{"url":"https://up.example/x"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.GetUploadURL(context.Background(), UploadURLOptions{Folder: "f1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.requests) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", len(stub.requests))
	}
	q := stub.requests[0].Query()
	if q.Get("login") != testLogin || q.Get("key") != testKey {
		t.Fatalf("credentials not attached, query: %v", q)
	}
	if q.Get("folder") != "f1" {
		t.Fatalf("caller params lost, query: %v", q)
	}
}

func TestDownloadLinkOmitsCredentials(t *testing.T) {
	stub := &upstreamStub{status: 200, result: `{"name":"a.mp4","url":"https://dl.example/a"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.DownloadLink(context.Background(), "abc", "tick-1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := stub.requests[0].Query()
	if q.Has("login") || q.Has("key") {
		t.Fatalf("download link call must not carry credentials, query: %v", q)
	}
	if q.Get("file") != "abc" || q.Get("ticket") != "tick-1" {
		t.Fatalf("missing file/ticket params, query: %v", q)
	}
}

func TestCallRejectsSmuggledCredentialKeys(t *testing.T) {
	stub := &upstreamStub{status: 200, result: `true`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.call(context.Background(), http.MethodGet, PathDeleteFile, map[string]string{
		"file":  "abc",
		"login": "attacker",
		"key":   "attacker-key",
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := stub.requests[0].Query()
	if q.Get("login") != testLogin || q.Get("key") != testKey {
		t.Fatalf("caller-supplied credential keys must be dropped, query: %v", q)
	}
}

func TestCallRejectsUnknownPath(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	_, err := client.call(context.Background(), http.MethodGet, "/file/everything", nil, true)
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for unknown upstream path, got %v", err)
	}
}

func TestRemoveAllIsOneCall(t *testing.T) {
	stub := &upstreamStub{status: 200, result: `true`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.RemoteUploadRemove(context.Background(), RemoveAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.requests) != 1 {
		t.Fatalf("cancel-all must be a single upstream call, got %d", len(stub.requests))
	}
	if got := stub.requests[0].Query().Get("id"); got != "all" {
		t.Fatalf("expected id=all, got %q", got)
	}
}

func TestFileInfoBatchesIDs(t *testing.T) {
	stub := &upstreamStub{status: 200, result: `{"12":{"id":"12"},"34":{"id":"34"},"56":{"id":"56"}}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.FileInfo(context.Background(), []string{"12", "34", "56"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.requests) != 1 {
		t.Fatalf("batched info must be a single upstream call, got %d", len(stub.requests))
	}
	if got := stub.requests[0].Query().Get("file"); got != "12,34,56" {
		t.Fatalf("expected file=12,34,56, got %q", got)
	}
	var byID map[string]json.RawMessage
	if err := json.Unmarshal(result, &byID); err != nil {
		t.Fatalf("result not relayed as-is: %v", err)
	}
	for _, id := range []string{"12", "34", "56"} {
		if _, ok := byID[id]; !ok {
			t.Fatalf("result missing entry for id %s", id)
		}
	}
}

func TestFileInfoValidation(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	tests := []struct {
		name string
		ids  []string
	}{
		{name: "empty", ids: nil},
		{name: "only blanks", ids: []string{"", "  "}},
		{name: "over limit", ids: make([]string, MaxFileInfoIDs+1)},
	}
	for i := range tests[2].ids {
		tests[2].ids[i] = fmt.Sprintf("id%d", i)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.FileInfo(context.Background(), tt.ids)
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL)
	_, err := client.ListFolder(context.Background(), "")
	if !errors.Is(err, errs.UpstreamUnreachable) {
		t.Fatalf("expected UpstreamUnreachable, got %v", err)
	}
	if errs.HTTPStatus(err) != 502 {
		t.Fatalf("transport failure must map to 502, got %d", errs.HTTPStatus(err))
	}
}

// Transport errors stringify the full request URL, credentials included;
// nothing of that may survive into the returned error.
func TestTransportFailureErrorOmitsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ListFolder(context.Background(), "")
	if err == nil {
		t.Fatal("expected transport failure")
	}
	msg := err.Error()
	if strings.Contains(msg, testLogin) || strings.Contains(msg, testKey) {
		t.Fatalf("transport error leaks credentials: %s", msg)
	}
	if !strings.Contains(msg, PathListFolder) {
		t.Fatalf("expected the upstream path for context, got: %s", msg)
	}
}

func TestSuccessEnvelopeWithoutResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":200,"msg":"OK"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.ListFolder(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != "null" {
		t.Fatalf("expected explicit null for missing result, got %q", result)
	}
	if !json.Valid(result) {
		t.Fatalf("result is not valid JSON: %q", result)
	}
}

func TestMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>oops</html>"},
		{name: "json without status", body: `{"hello":"world"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()
			client := newTestClient(srv.URL)
			_, err := client.ListFolder(context.Background(), "")
			if !errors.Is(err, errs.MalformedResponse) {
				t.Fatalf("expected MalformedResponse, got %v", err)
			}
		})
	}
}

func TestUpstreamReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":404,"msg":"file not found","result":null}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.DeleteFile(context.Background(), "gone")
	var ue *errs.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Code != 404 || ue.Message != "file not found" {
		t.Fatalf("upstream status/message not mirrored: %+v", ue)
	}
}

func TestRateLimitIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":509,"msg":"bandwidth usage exceeded","result":null}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ListFolder(context.Background(), "")
	var ue *errs.UpstreamError
	if !errors.As(err, &ue) || !ue.IsRateLimit() {
		t.Fatalf("expected rate-limit upstream error, got %v", err)
	}
	if errs.Kind(err) != errs.KindUpstreamRateLimited {
		t.Fatalf("expected kind %s, got %s", errs.KindUpstreamRateLimited, errs.Kind(err))
	}
}

func TestThumbnailReturnsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":200,"msg":"OK","result":"https://thumb.example/abc.jpg"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	url, err := client.Thumbnail(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://thumb.example/abc.jpg" {
		t.Fatalf("unexpected thumbnail url: %q", url)
	}
}

func TestRenameFileEchoesNewName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":200,"msg":"OK","result":{"name":%q}}`, r.URL.Query().Get("name"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.RenameFile(context.Background(), "abc", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(result), `"y"`) {
		t.Fatalf("result does not reflect new name: %s", result)
	}
}

func TestOperationValidations(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	ctx := context.Background()
	tests := []struct {
		name string
		call func() error
	}{
		{"remote add without url", func() error {
			_, err := client.RemoteUploadAdd(ctx, RemoteUploadOptions{})
			return err
		}},
		{"remote status without id", func() error {
			_, err := client.RemoteUploadStatus(ctx, "")
			return err
		}},
		{"create folder without name", func() error {
			_, err := client.CreateFolder(ctx, "", "")
			return err
		}},
		{"rename folder without name", func() error {
			_, err := client.RenameFolder(ctx, "f1", "")
			return err
		}},
		{"move without destination", func() error {
			_, err := client.MoveFile(ctx, "abc", "")
			return err
		}},
		{"link without ticket", func() error {
			_, err := client.DownloadLink(ctx, "abc", "", "")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
