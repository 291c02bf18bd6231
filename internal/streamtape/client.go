package streamtape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/AuraHubTeam/AuraHub/internal/errs"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Client is the only component allowed to talk to the upstream service and
// the only place the account login/key exist outside configuration. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	login   string
	key     string
	rc      *resty.Client
}

func NewClient(cfg conf.Upstream) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		login:   cfg.Login,
		key:     cfg.Key,
		rc:      rc,
	}
}

// call issues exactly one request to baseURL+path and decodes the upstream
// envelope. withAuth controls whether login/key are merged into the query;
// the download-link step is the one operation that must run without them.
// Caller-supplied params can never override or smuggle credential keys.
func (c *Client) call(ctx context.Context, method, path string, params map[string]string, withAuth bool) (json.RawMessage, error) {
	if _, ok := knownPaths[path]; !ok {
		return nil, errs.NewValidation("path", fmt.Sprintf("unknown upstream operation %q", path))
	}
	query := make(map[string]string, len(params)+2)
	for k, v := range params {
		if k == "login" || k == "key" || v == "" {
			continue
		}
		query[k] = v
	}
	if withAuth {
		query["login"] = c.login
		query["key"] = c.key
	}

	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(query).
		Execute(method, path)
	if err != nil {
		// The transport error's string carries the full request URL, query
		// and credentials included. Only the underlying cause may travel
		// into messages or logs.
		cause := err
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Err != nil {
			cause = uerr.Err
		}
		log.Debugf("upstream call %s failed: %v", path, cause)
		return nil, errors.Wrapf(errs.UpstreamUnreachable, "calling %s: %v", path, cause)
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		if !resp.IsSuccess() {
			return nil, &errs.UpstreamError{Code: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		}
		return nil, errs.MalformedResponse
	}
	doc := gjson.ParseBytes(body)
	status := doc.Get("status")
	if !status.Exists() {
		if !resp.IsSuccess() {
			return nil, &errs.UpstreamError{Code: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		}
		return nil, errs.MalformedResponse
	}
	if status.Int() != http.StatusOK {
		msg := doc.Get("msg").String()
		if msg == "" {
			msg = "upstream request failed"
		}
		return nil, &errs.UpstreamError{Code: int(status.Int()), Message: msg}
	}
	result := doc.Get("result")
	if !result.Exists() {
		// A success envelope may omit result entirely; relay an explicit
		// null so the caller still gets a valid JSON body.
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(result.Raw), nil
}
