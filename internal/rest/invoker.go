// Package rest executes compiled API requests against the backend.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tutorhub-ai/tutorhub/internal/apireq"
	"github.com/tutorhub-ai/tutorhub/internal/auth"
	apperrors "github.com/tutorhub-ai/tutorhub/internal/errors"
)

// Config configures the REST invoker.
type Config struct {
	// BaseURL is the backend root, e.g. "https://center.example.com".
	BaseURL string

	// Timeout bounds a single call. Zero means no timeout, which is the
	// default: any timeout policy belongs to the transport.
	Timeout time.Duration

	// Tokens yields the bearer token attached to every call.
	Tokens auth.TokenSource

	// Logger receives internal failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Invoker executes one compiled request per call: no retries, no
// caching. The access token is read from the token source on every
// call so mid-session refreshes are picked up automatically.
type Invoker struct {
	base   string
	tokens auth.TokenSource
	client *resty.Client
	log    *slog.Logger
}

// NewInvoker creates an invoker for the given backend.
func NewInvoker(cfg *Config) *Invoker {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Invoker{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		tokens: cfg.Tokens,
		client: client,
		log:    log,
	}
}

// Call executes the request and returns the decoded response body.
//
//   - non-2xx status: *errors.ApiError carrying status and raw body text
//   - 204 No Content: nil
//   - JSON content type: decoded into any
//   - anything else: the raw body as a string
//
// Transport failures propagate as transport-category errors; there is
// no retry.
func (i *Invoker) Call(ctx context.Context, req *apireq.Request) (any, error) {
	fullURL := i.buildURL(req)

	token, err := i.tokens.Token(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeNetworkFailure, "token source failed", apperrors.CategoryTransport)
	}

	r := i.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token)

	if req.Body != nil && (req.Method == apireq.MethodPost || req.Method == apireq.MethodPut) {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(string(req.Method), fullURL)
	if err != nil {
		i.log.Error("backend request failed", "method", req.Method, "url", fullURL, "err", err)
		return nil, apperrors.Wrap(err, apperrors.CodeNetworkFailure, "backend request failed", apperrors.CategoryTransport)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		i.log.Warn("backend returned error status", "method", req.Method, "url", fullURL, "status", status)
		return nil, &apperrors.ApiError{Status: status, Body: resp.String()}
	}

	if status == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil, nil
	}

	contentType := resp.Header().Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var decoded any
		if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeAPIStatus, "malformed json response", apperrors.CategoryTransport)
		}
		return decoded, nil
	}

	return resp.String(), nil
}

// buildURL substitutes "{key}" path placeholders and appends the
// URL-encoded query string. Empty query values are filtered out, which
// is where an unresolved extracted query param silently disappears.
func (i *Invoker) buildURL(req *apireq.Request) string {
	endpoint := req.Endpoint
	for key, val := range req.PathParams {
		endpoint = strings.ReplaceAll(endpoint, "{"+key+"}", url.PathEscape(val))
	}

	full := i.base + endpoint

	if len(req.QueryParams) > 0 {
		values := url.Values{}
		for key, val := range req.QueryParams {
			if val == "" {
				continue
			}
			values.Set(key, val)
		}
		if encoded := values.Encode(); encoded != "" {
			full += "?" + encoded
		}
	}

	return full
}
