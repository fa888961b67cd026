package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultClientTimeout bounds a single request made through [HTTPClient].
const DefaultClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.R().SetQueryParam("page_size", "5").Get("/page")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose relative request URLs are
// resolved against baseURL. An empty baseURL leaves URLs untouched.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().SetTimeout(DefaultClientTimeout)
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	return &HTTPClient{Client: client}
}
