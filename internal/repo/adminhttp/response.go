package adminhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const defaultAPIErrorMessage = "API request failed"

// APIError is a failure reported by the admin API itself: a non-2xx status, or a
// 2xx envelope with success set to false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("admin api: status=%d: %s", e.StatusCode, e.Message)
}

func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Envelope is the wire shape of every JSON response: {success, data?, error?, message?}.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e Envelope[T]) Err(statusCode int) error {
	if e.Success {
		return nil
	}
	message := strings.TrimSpace(e.Error)
	if message == "" {
		message = strings.TrimSpace(e.Message)
	}
	if message == "" {
		message = "request was not successful"
	}
	return &APIError{StatusCode: statusCode, Message: message}
}

func (c *Client) DoJSON(ctx context.Context, method, path string, reqBody any, respBody any) error {
	var payload []byte
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return &RequestError{Op: "marshal request body", Err: err}
		}
		payload = encoded
	}

	resp, err := c.Do(ctx, Request{Method: method, Path: path, Body: payload})
	if err != nil {
		return err
	}
	return handleResponse(resp, respBody)
}

// handleResponse turns a non-2xx response into *APIError and decodes a successful body.
func handleResponse(resp *Response, out any) error {
	if !resp.OK() {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil || len(strings.TrimSpace(string(resp.Body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &RequestError{Op: "decode http response", StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// errorMessage accepts both {"error":"..."} and {"error":{"message":"..."}} bodies.
func errorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return defaultAPIErrorMessage
	}

	if len(payload.Error) > 0 {
		var text string
		if err := json.Unmarshal(payload.Error, &text); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Error, &nested); err == nil && strings.TrimSpace(nested.Message) != "" {
			return strings.TrimSpace(nested.Message)
		}
	}
	return defaultAPIErrorMessage
}

// getData performs a JSON call and unwraps the envelope.
func getData[T any](ctx context.Context, c *Client, method, path string, reqBody any) (T, error) {
	var zero T
	if c == nil {
		return zero, &RequestError{Op: "do request", Err: ErrNotInitialized}
	}

	var envelope Envelope[T]
	if err := c.DoJSON(ctx, method, path, reqBody, &envelope); err != nil {
		return zero, err
	}
	if err := envelope.Err(http.StatusOK); err != nil {
		return zero, err
	}
	return envelope.Data, nil
}
