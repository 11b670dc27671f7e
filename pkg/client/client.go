// Package client talks to the dealership HTTP API and keeps the last known
// state of each resource in a Holder that views can subscribe to.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
)

const defaultTimeout = 15 * time.Second

// Client carries the session cookie between calls in its cookie jar.
type Client struct {
	transport *httptransport.Runtime
	formats   strfmt.Registry
	schemes   []string
}

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Jar: jar, Timeout: defaultTimeout}

	basePath := u.Path
	if basePath == "" {
		basePath = "/"
	}
	schemes := []string{u.Scheme}

	return &Client{
		transport: httptransport.NewWithClient(u.Host, basePath, schemes, httpClient),
		formats:   strfmt.Default,
		schemes:   schemes,
	}, nil
}

type operation struct {
	id         string
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	body       interface{}
}

// submit runs op and decodes a successful JSON answer into out, which may be nil.
func (c *Client) submit(ctx context.Context, op operation, out interface{}) error {
	_, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 op.id,
		Method:             op.method,
		PathPattern:        op.path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Schemes:            c.schemes,
		Context:            ctx,
		Params: runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
			for name, value := range op.pathParams {
				if err := r.SetPathParam(name, value); err != nil {
					return err
				}
			}
			for name, value := range op.query {
				if err := r.SetQueryParam(name, value); err != nil {
					return err
				}
			}
			if op.body != nil {
				return r.SetBodyParam(op.body)
			}
			return nil
		}),
		Reader: runtime.ClientResponseReaderFunc(func(resp runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
			if resp.Code() >= http.StatusBadRequest {
				var body struct {
					Error string `json:"error"`
				}
				if err := consumer.Consume(resp.Body(), &body); err != nil || body.Error == "" {
					body.Error = http.StatusText(resp.Code())
				}
				return nil, &APIError{Status: resp.Code(), Message: body.Error}
			}
			if out == nil {
				return nil, nil
			}
			if err := consumer.Consume(resp.Body(), out); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%s: decode response: %w", op.id, err)
			}
			return out, nil
		}),
	})
	return err
}
