package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty.Client preconfigured for the task service API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an [HTTPClient] that talks JSON to baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "taskctl")

	return &HTTPClient{Client: client}
}
