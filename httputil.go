package tradebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"go.uber.org/zap"
)

// contains http utils to deal with the ledger backend

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Status  string
	Message string // backend "message" property, if any
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cannot http %s %s: %s: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("cannot http %s %s: %s", e.Method, e.Path, e.Status)
}

// response is a fully read http response.
type response struct {
	code   int
	status string
	body   []byte
}

func (r response) ok() bool { return r.code >= 200 && r.code < 300 }

// roundTrip sends a request with an optional JSON body and reads the full response.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, in any) (response, error) {
	addr := c.base.JoinPath(path)
	addr.RawQuery = query.Encode()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return response{}, fmt.Errorf("cannot encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, addr.String(), body)
	if err != nil {
		return response{}, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("http request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return response{}, fmt.Errorf("cannot http %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return response{}, fmt.Errorf("cannot read %s %s response: %w", method, path, err)
	}
	c.log.Debug("http",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("query", addr.RawQuery),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return response{code: resp.StatusCode, status: resp.Status, body: buf.Bytes()}, nil
}

// jdo performs a request and unmarshals the JSON response into out, if out
// is not nil and the body is not empty.
func (c *Client) jdo(ctx context.Context, method, path string, query url.Values, in, out any) error {
	resp, err := c.roundTrip(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return &StatusError{Method: method, Path: path, Code: resp.code, Status: resp.status, Message: messageOf(resp.body)}
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	return nil
}

// jresult performs a request answered by a Result envelope. The envelope is
// decoded whatever the status, so that the backend message reaches the user.
func (c *Client) jresult(ctx context.Context, method, path string, in any) (Result, error) {
	resp, err := c.roundTrip(ctx, method, path, nil, in)
	if err != nil {
		return Result{}, err
	}
	var res Result
	if err := json.Unmarshal(resp.body, &res); err != nil || res.Message == "" {
		if !resp.ok() {
			return Result{}, &StatusError{Method: method, Path: path, Code: resp.code, Status: resp.status, Message: messageOf(resp.body)}
		}
		if err != nil {
			return Result{}, fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
		}
	}
	if !resp.ok() {
		// a failed request is never a success, whatever the body says.
		res.Success = false
	}
	return res, nil
}

// messageOf extracts the "message" property of a JSON error body, or "".
func messageOf(body []byte) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return ""
	}
	jval, err := jsonpath.Get("$.message", jobj)
	if err != nil {
		return ""
	}
	msg, _ := jval.(string)
	return msg
}
