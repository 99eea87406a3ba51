package httpclient

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// New returns a client whose cookie jar carries the backend session cookies.
// A zero timeout leaves requests bounded by the network stack only.
func New(timeout time.Duration) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &http.Client{Timeout: timeout, Jar: jar}, nil
}
