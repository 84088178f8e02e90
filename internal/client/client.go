// Package client talks to the site API. Every call is a single attempt;
// nothing is cached.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/onebluedot/site/internal/api/types"
	fastshot "github.com/opus-domini/fast-shot"
)

const defaultTimeout = 15 * time.Second

type Options struct {
	// BaseURL includes the API prefix, e.g. http://localhost:8080/make-server-obd.
	BaseURL string
	// PublicKey authorizes reads.
	PublicKey string
	// AccessToken authorizes mutations.
	AccessToken string
	Timeout     time.Duration
}

type Client struct {
	http      fastshot.ClientHttpMethods
	publicKey string
	token     string
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	hc := fastshot.NewClient(opts.BaseURL).
		Config().SetTimeout(opts.Timeout).
		Header().Add("Accept", "application/json").
		Build()
	return &Client{http: hc, publicKey: opts.PublicKey, token: opts.AccessToken}
}

// WithAccessToken returns a client that sends token on mutations.
func (c *Client) WithAccessToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// AccessToken is the token sent on mutations.
func (c *Client) AccessToken() string { return c.token }

func (c *Client) publicAuth() string { return "Bearer " + c.publicKey }

func (c *Client) userAuth() string { return "Bearer " + c.token }

// do sends the request built by b and decodes a 2xx JSON body into out.
// out may be nil.
func do(b *fastshot.RequestBuilder, out any) error {
	resp, err := b.Send()
	if err != nil {
		return connectivity(err)
	}
	defer resp.Body().Close()

	code := resp.Status().Code()
	if code < 200 || code > 299 {
		return apiError(resp, code)
	}
	if out == nil {
		return nil
	}
	if err := resp.Body().AsJSON(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError prefers the server's message, then the status text.
func apiError(resp *fastshot.Response, code int) error {
	e := &APIError{Status: code}
	raw, err := resp.Body().AsString()
	var body types.ErrorResponse
	if err == nil && json.Unmarshal([]byte(raw), &body) == nil {
		e.Message = body.Error
		e.SetupRequired = body.SetupRequired
		if e.Message == "" {
			e.Message = fmt.Sprintf("HTTP %d", code)
		}
		return e
	}
	e.Message = http.StatusText(code)
	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP %d", code)
	}
	return e
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return do(c.http.GET(path).
		Context().Set(ctx).
		Header().Add("Authorization", c.publicAuth()), out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var b *fastshot.RequestBuilder
	switch method {
	case http.MethodPost:
		b = c.http.POST(path)
	case http.MethodPut:
		b = c.http.PUT(path)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	return do(b.
		Context().Set(ctx).
		Header().Add("Authorization", c.userAuth()).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(in), out)
}
